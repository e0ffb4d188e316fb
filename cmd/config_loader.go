package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/selx/pkg/selx"
)

// styleConfig is the on-disk shape of a style override file. It names a
// built-in theme and optionally recolors individual slots; anything left
// empty keeps the theme's value.
type styleConfig struct {
	Theme  string `yaml:"theme" toml:"theme"`
	Colors struct {
		Text        string `yaml:"text" toml:"text"`
		Selected    string `yaml:"selected" toml:"selected"`
		Option      string `yaml:"option" toml:"option"`
		ActiveFG    string `yaml:"active_fg" toml:"active_fg"`
		ActiveBG    string `yaml:"active_bg" toml:"active_bg"`
		Border      string `yaml:"border" toml:"border"`
		Placeholder string `yaml:"placeholder" toml:"placeholder"`
	} `yaml:"colors" toml:"colors"`
}

// loadStyleConfig reads a YAML or TOML style file (decided by extension) and
// resolves it to a concrete style set.
func loadStyleConfig(path string) (selx.Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return selx.Styles{}, fmt.Errorf("read style config %s: %w", path, err)
	}

	var cfg styleConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return selx.Styles{}, fmt.Errorf("decode style config %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return selx.Styles{}, fmt.Errorf("decode style config %s: %w", path, err)
		}
	}
	return resolveStyleConfig(cfg)
}

func resolveStyleConfig(cfg styleConfig) (selx.Styles, error) {
	theme := cfg.Theme
	if theme == "" {
		theme = "dark"
	}
	styles, err := selx.StylesByName(theme)
	if err != nil {
		return selx.Styles{}, err
	}

	if c := cfg.Colors.Text; c != "" {
		styles.TextInput = styles.TextInput.Foreground(lipgloss.Color(c))
	}
	if c := cfg.Colors.Selected; c != "" {
		styles.TextInputSelected = styles.TextInputSelected.Foreground(lipgloss.Color(c))
	}
	if c := cfg.Colors.Option; c != "" {
		styles.Option = styles.Option.Foreground(lipgloss.Color(c))
	}
	if c := cfg.Colors.ActiveFG; c != "" {
		styles.ActiveOption = styles.ActiveOption.Foreground(lipgloss.Color(c))
	}
	if c := cfg.Colors.ActiveBG; c != "" {
		styles.ActiveOption = styles.ActiveOption.Background(lipgloss.Color(c))
	}
	if c := cfg.Colors.Border; c != "" {
		styles.Dropdown = styles.Dropdown.BorderForeground(lipgloss.Color(c))
	}
	if c := cfg.Colors.Placeholder; c != "" {
		styles.Placeholder = styles.Placeholder.Foreground(lipgloss.Color(c))
	}
	return styles, nil
}
