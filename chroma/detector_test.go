package chroma_test

import (
	"testing"

	"github.com/fwojciec/diffedit/chroma"
	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	detector := chroma.NewDetector()

	cases := []struct {
		name string
		path string
		want string
	}{
		{"go file", "registry.go", "Go"},
		{"python file", "train.py", "Python"},
		{"tsx maps to typescript", "Sidebar.tsx", "TypeScript"},
		{"rust file", "parser.rs", "Rust"},
		{"javascript file", "index.js", "JavaScript"},
		{"yaml file", "config.yaml", "YAML"},
		{"nested path uses the base name", "internal/shell/shell.go", "Go"},
		{"absolute path uses the base name", "/home/user/project/app.py", "Python"},
		{"unknown extension", "notes.zzz", ""},
		{"no extension", "a/b/datafile", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, detector.DetectFromPath(tc.path))
		})
	}
}
