package sequencer

// Config holds sequencer settings.
type Config struct {
	Loop      bool
	StartStep int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a looping sequencer that starts at step 0.
func DefaultConfig() Config {
	return Config{Loop: true}
}

// WithLoop sets whether the step counter wraps at the end of the cycle.
// Without looping the counter keeps growing; patterns still wrap on their own.
func WithLoop(loop bool) Option {
	return func(cfg *Config) {
		cfg.Loop = loop
	}
}

// WithStartStep sets the step the counter returns to when started.
func WithStartStep(step int) Option {
	return func(cfg *Config) {
		if step >= 0 {
			cfg.StartStep = step
		}
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
