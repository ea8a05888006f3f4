package diffedit

// Descriptor describes how one supported editor is probed and invoked.
type Descriptor struct {
	PosixCommand   string // Executable name probed on PATH (POSIX)
	WindowsCommand string // Executable name probed on PATH (Windows)
	Mode           LaunchMode
	SandboxAllowed bool // Whether the editor may run inside a restricted sandbox
	DiffArgs       func(oldPath, newPath string) []string
}

// Command returns the platform-specific executable name.
func (d Descriptor) Command(windows bool) string {
	if windows {
		return d.WindowsCommand
	}
	return d.PosixCommand
}

// descriptors maps every concrete editor to its invocation recipe.
// EditorEnv has no descriptor; its command comes from VISUAL/EDITOR at
// call time. The mapping is never mutated after initialization.
var descriptors = map[Editor]Descriptor{
	EditorVSCode: {
		PosixCommand:   "code",
		WindowsCommand: "code.cmd",
		Mode:           LaunchGUI,
		DiffArgs:       guiDiffArgs,
	},
	EditorVSCodium: {
		PosixCommand:   "codium",
		WindowsCommand: "codium.cmd",
		Mode:           LaunchGUI,
		DiffArgs:       guiDiffArgs,
	},
	EditorWindsurf: {
		PosixCommand:   "windsurf",
		WindowsCommand: "windsurf",
		Mode:           LaunchGUI,
		DiffArgs:       guiDiffArgs,
	},
	EditorCursor: {
		PosixCommand:   "cursor",
		WindowsCommand: "cursor",
		Mode:           LaunchGUI,
		DiffArgs:       guiDiffArgs,
	},
	EditorZed: {
		PosixCommand:   "zed",
		WindowsCommand: "zed",
		Mode:           LaunchGUI,
		DiffArgs:       guiDiffArgs,
	},
	EditorVim: {
		PosixCommand:   "vim",
		WindowsCommand: "vim",
		Mode:           LaunchTerminal,
		SandboxAllowed: true,
		DiffArgs:       vimDiffArgs,
	},
}

// editorOrder lists concrete editors in detection priority order.
// GUI editors come first; the terminal editor is the last resort.
var editorOrder = []Editor{
	EditorVSCode,
	EditorVSCodium,
	EditorWindsurf,
	EditorCursor,
	EditorZed,
	EditorVim,
}

// DescriptorOf returns the static descriptor for a concrete editor.
// Returns false for EditorEnv and unknown values.
func DescriptorOf(e Editor) (Descriptor, bool) {
	d, ok := descriptors[e]
	return d, ok
}

// Editors returns all concrete editors in detection priority order.
func Editors() []Editor {
	out := make([]Editor, len(editorOrder))
	copy(out, editorOrder)
	return out
}

// extraGUINames are well-known GUI editors without first-class identifiers,
// recognized when they appear in VISUAL/EDITOR.
var extraGUINames = []string{"subl", "notepad"}

// guiCommandNames returns every executable name classified as a GUI editor:
// the registry's GUI lookup commands on both platforms plus the extras.
// Deriving the set from the registry keeps the two in sync.
func guiCommandNames() map[string]bool {
	names := make(map[string]bool)
	for _, e := range editorOrder {
		d := descriptors[e]
		if d.Mode != LaunchGUI {
			continue
		}
		names[d.PosixCommand] = true
		names[d.WindowsCommand] = true
	}
	for _, n := range extraGUINames {
		names[n] = true
	}
	return names
}

// guiDiffArgs builds the generic diff-mode argument vector shared by all
// GUI editors: wait for the window to close, then compare old against new.
func guiDiffArgs(oldPath, newPath string) []string {
	return []string{"--wait", "--diff", oldPath, newPath}
}

// terminalDiffArgs builds the argument vector for a terminal editor
// configured through VISUAL/EDITOR: just the two paths, no extra flags.
func terminalDiffArgs(oldPath, newPath string) []string {
	return []string{oldPath, newPath}
}

// vimDiffArgs builds vim's diff-mode argument vector: split view with the
// old file read-only on the left, diff highlight groups tuned for dark
// terminals, an instruction tabline, and session-wide quit when either
// window closes.
func vimDiffArgs(oldPath, newPath string) []string {
	return []string{
		"-d",
		"-i", "NONE",
		"-c", "wincmd h | set readonly",
		"-c", "highlight DiffAdd ctermbg=22 guibg=#2d4a2d | highlight DiffDelete ctermbg=52 guibg=#4a2d2d | highlight DiffChange ctermbg=24 guibg=#2d3a4a | highlight DiffText ctermbg=30 cterm=bold guibg=#3d5a5a gui=bold",
		"-c", `set showtabline=2 | set tabline=[diffedit]\ left:\ old\ (read-only)\ \|\ right:\ new\ \|\ :wqa\ saves\ \|\ :qa!\ discards`,
		"-c", "autocmd WinClosed * wqa",
		oldPath,
		newPath,
	}
}
