package selx

const (
	// DefaultDebounceMs is the quiet period applied to keystrokes before a
	// query is emitted to the host.
	DefaultDebounceMs = 100
	// DefaultUpdateMinLen is the minimum text length that produces a query;
	// shorter input clears and closes the dropdown instead.
	DefaultUpdateMinLen = 3
)

// Config holds the host-provided settings for one live-select instance.
// It is read at mount time and never mutated afterwards.
type Config struct {
	Disabled    bool
	Placeholder string

	// DebounceMs is the keystroke quiet period in milliseconds. Zero is
	// valid and means "emit on the next scheduler tick".
	DebounceMs int
	// UpdateMinLen is the minimum query length; must be at least 1.
	UpdateMinLen int

	// MaxVisibleOptions caps how many options the projection exposes.
	// Zero means no cap.
	MaxVisibleOptions int
	// Width is the rendered width of the control in cells. Zero uses a
	// sensible default.
	Width int

	// StyleName selects a built-in style set ("dark", "warm", "none").
	// Styles, when non-nil, wins over StyleName.
	StyleName string
	Styles    *Styles
}

// DefaultConfig returns the baseline configuration. Hosts adjust fields on
// the returned value; a zero Config fails validation on purpose.
func DefaultConfig() Config {
	return Config{
		DebounceMs:   DefaultDebounceMs,
		UpdateMinLen: DefaultUpdateMinLen,
		StyleName:    "dark",
	}
}

// Validate checks the configuration. Any failure is a *ConfigurationError and
// fails the mount entirely rather than degrading silently.
func (c Config) Validate() error {
	if c.DebounceMs < 0 {
		return &ConfigurationError{Field: "DebounceMs", Reason: "must be non-negative"}
	}
	if c.UpdateMinLen < 1 {
		return &ConfigurationError{Field: "UpdateMinLen", Reason: "must be at least 1"}
	}
	if c.MaxVisibleOptions < 0 {
		return &ConfigurationError{Field: "MaxVisibleOptions", Reason: "must be non-negative"}
	}
	if c.Width < 0 {
		return &ConfigurationError{Field: "Width", Reason: "must be non-negative"}
	}
	if c.Styles == nil && c.StyleName != "" {
		if _, err := StylesByName(c.StyleName); err != nil {
			return &ConfigurationError{Field: "StyleName", Reason: err.Error()}
		}
	}
	return nil
}

// resolveStyles picks the effective style set for a validated config.
func (c Config) resolveStyles() Styles {
	if c.Styles != nil {
		return *c.Styles
	}
	if c.StyleName != "" {
		if s, err := StylesByName(c.StyleName); err == nil {
			return s
		}
	}
	return DefaultStyles()
}
