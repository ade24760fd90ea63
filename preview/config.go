package preview

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultWidth is used when no width is configured.
	DefaultWidth = 80
	// MinWidth is the narrowest supported output.
	MinWidth = 20
	// MaxWidth is the widest supported output.
	MaxWidth = 1000
)

// Config holds the preview settings. The zero value renders with the
// default theme at DefaultWidth.
type Config struct {
	Width       int
	Theme       Theme
	OSC8        bool
	FrontMatter bool
}

// Validate checks that the width is in range.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Width, validation.When(c.Width != 0,
			validation.Min(MinWidth), validation.Max(MaxWidth))),
	)
}

// Option adjusts a Config.
type Option func(*Config)

// WithWidth sets the wrap width in terminal cells.
func WithWidth(width int) Option {
	return func(c *Config) { c.Width = width }
}

// WithTheme sets the theme. A nil theme selects DefaultTheme.
func WithTheme(t Theme) Option {
	return func(c *Config) { c.Theme = t }
}

// WithOSC8 toggles OSC 8 hyperlinks for image paths.
func WithOSC8(enabled bool) Option {
	return func(c *Config) { c.OSC8 = enabled }
}

// WithFrontMatter toggles the front-matter header.
func WithFrontMatter(enabled bool) Option {
	return func(c *Config) { c.FrontMatter = enabled }
}

func newConfig(opts []Option) (Config, error) {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Theme == nil {
		cfg.Theme = DefaultTheme()
	}
	return cfg, nil
}
