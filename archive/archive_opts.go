package archive

import "log/slog"

const (
	// DefaultMaxFileSize is the default maximum entry size (256MB).
	DefaultMaxFileSize = 256 << 20

	// DefaultMaxDecoderMemory is the default maximum zstd decoder memory (256MB).
	DefaultMaxDecoderMemory = 256 << 20
)

// Option configures a Reader.
type Option func(*Reader)

// WithMaxFileSize limits the maximum per-entry size (compressed and uncompressed).
// Entries declaring a larger size fail the open-time consistency check.
// Set limit to 0 to disable the limit.
func WithMaxFileSize(limit uint64) Option {
	return func(r *Reader) {
		r.maxFileSize = limit
	}
}

// WithMaxDecoderMemory limits the maximum memory used by the zstd decoder.
// Set limit to 0 to disable the limit.
func WithMaxDecoderMemory(limit uint64) Option {
	return func(r *Reader) {
		r.maxDecoderMemory = limit
	}
}

// WithDecoderConcurrency sets the zstd decoder concurrency (default: 1).
// Values < 0 are treated as 0 (use GOMAXPROCS).
func WithDecoderConcurrency(n int) Option {
	return func(r *Reader) {
		if n < 0 {
			n = 0
		}
		r.decoderConcurrency = n
	}
}

// WithDecoderLowmem sets whether the zstd decoder should use low-memory mode (default: false).
func WithDecoderLowmem(enabled bool) Option {
	return func(r *Reader) {
		r.decoderLowmem = enabled
	}
}

// WithLogger sets the logger used for diagnostics.
// A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}
