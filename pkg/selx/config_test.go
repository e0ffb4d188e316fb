package selx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"zero debounce is valid", func(c *Config) { c.DebounceMs = 0 }, ""},
		{"negative debounce", func(c *Config) { c.DebounceMs = -1 }, "DebounceMs"},
		{"zero min length", func(c *Config) { c.UpdateMinLen = 0 }, "UpdateMinLen"},
		{"negative min length", func(c *Config) { c.UpdateMinLen = -3 }, "UpdateMinLen"},
		{"negative max visible", func(c *Config) { c.MaxVisibleOptions = -1 }, "MaxVisibleOptions"},
		{"negative width", func(c *Config) { c.Width = -2 }, "Width"},
		{"unknown style name", func(c *Config) { c.StyleName = "neon" }, "StyleName"},
		{"explicit styles skip name lookup", func(c *Config) { c.StyleName = "neon"; c.Styles = &Styles{} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestNewFailsOnInvalidConfig(t *testing.T) {
	_, err := New(Identity{Component: "c", Field: "f"}, Config{UpdateMinLen: 0, DebounceMs: 100})
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestStylesByName(t *testing.T) {
	for _, name := range []string{"dark", "warm", "none"} {
		_, err := StylesByName(name)
		assert.NoError(t, err, name)
	}
	_, err := StylesByName("missing")
	assert.Error(t, err)
}
