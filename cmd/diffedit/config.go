package main

import (
	"fmt"

	"github.com/fwojciec/diffedit"
	"github.com/fwojciec/diffedit/lipgloss"
	"github.com/kelseyhightower/envconfig"
	"github.com/muesli/termenv"
)

// Config holds tool settings read from DIFFEDIT_* environment variables.
// Fields deliberately carry no envconfig name tags: a tag would register an
// unprefixed alternate key, and falling back to the user's plain EDITOR or
// THEME variables would change their meaning.
type Config struct {
	// Editor is the preferred editor identifier (DIFFEDIT_EDITOR), using the
	// same names as the --editor flag.
	Editor string
	// Theme selects the preview color scheme (DIFFEDIT_THEME): dark, light,
	// or auto.
	Theme string `default:"auto"`
}

// LoadConfig parses DIFFEDIT_* environment variables.
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("diffedit", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	switch config.Theme {
	case "dark", "light", "auto":
	default:
		return nil, fmt.Errorf("invalid DIFFEDIT_THEME %q: must be dark, light, or auto", config.Theme)
	}
	return &config, nil
}

// ResolveTheme maps the configured theme name to a concrete theme,
// following the terminal background when set to auto.
func (c *Config) ResolveTheme() diffedit.Theme {
	switch c.Theme {
	case "dark":
		return lipgloss.DarkTheme()
	case "light":
		return lipgloss.LightTheme()
	}
	if termenv.HasDarkBackground() {
		return lipgloss.DarkTheme()
	}
	return lipgloss.LightTheme()
}
