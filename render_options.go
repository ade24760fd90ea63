package mdir

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	normalizer Normalizer
}

// WithNormalizer runs n over the complete rendered output. A nil
// normalizer restores the identity default.
func WithNormalizer(n Normalizer) RenderOption {
	return func(cfg *renderConfig) {
		cfg.normalizer = n
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.normalizer == nil {
		cfg.normalizer = identity
	}
	return cfg
}
