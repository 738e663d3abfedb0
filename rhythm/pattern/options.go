package pattern

// Config holds settings for [Euclidean].
type Config struct {
	Rotation int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings for an unrotated pattern.
func DefaultConfig() Config {
	return Config{}
}

// WithRotation rotates the generated pattern left by r steps.
// Negative values rotate right.
func WithRotation(r int) Option {
	return func(cfg *Config) {
		cfg.Rotation = r
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
