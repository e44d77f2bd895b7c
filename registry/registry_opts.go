package registry

import "log/slog"

// defaultCapacity is the initial backing capacity allocated on first insert.
const defaultCapacity = 10

// defaultName labels a registry in logs and metrics when WithName is not used.
const defaultName = "default"

// Option configures a Registry.
type Option func(*config)

type config struct {
	name     string
	capacity int
	logger   *slog.Logger
}

// WithName labels the registry in logs and metrics.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithCapacity sets the backing capacity allocated on first insert.
// Storage grows geometrically beyond it. Values <= 0 use the default.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger sets the logger used for diagnostics.
// A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
