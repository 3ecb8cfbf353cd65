package bark

type config struct {
	correct bool
}

// Option configures [Convert].
type Option func(*config)

// WithTraunmullerCorrection enables Traunmüller's (1990) low- and high-end
// corrections of [Correct] on every converted value.
func WithTraunmullerCorrection() Option {
	return func(cfg *config) {
		cfg.correct = true
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
