package zipassets

import (
	"log/slog"

	"github.com/gregoryfmartin/zipassets/archive"
	"github.com/gregoryfmartin/zipassets/registry"
	"github.com/gregoryfmartin/zipassets/texture"
)

// DefaultExtensions are the entry name suffixes LoadTextures accepts by default.
var DefaultExtensions = []string{".png", ".jpg"}

// LoadOption configures LoadTextures.
type LoadOption func(*loadConfig)

type loadConfig struct {
	extensions  []string
	archiveOpts []archive.Option
	decoderOpts []texture.Option
	regOpts     []registry.Option
	logger      *slog.Logger
}

// LoadWithExtensions replaces the accepted entry name suffixes.
// Matching ignores case.
func LoadWithExtensions(exts ...string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.extensions = exts
	}
}

// --- Archive options (passed to archive.Open) ---

// LoadWithMaxFileSize limits the uncompressed size of a single entry.
// Set limit to 0 to disable the limit.
func LoadWithMaxFileSize(limit uint64) LoadOption {
	return func(cfg *loadConfig) {
		cfg.archiveOpts = append(cfg.archiveOpts, archive.WithMaxFileSize(limit))
	}
}

// LoadWithDecoderConcurrency sets the zstd decoder concurrency (default: 1).
// Values < 0 are treated as 0 (use GOMAXPROCS).
func LoadWithDecoderConcurrency(n int) LoadOption {
	return func(cfg *loadConfig) {
		cfg.archiveOpts = append(cfg.archiveOpts, archive.WithDecoderConcurrency(n))
	}
}

// LoadWithDecoderLowmem sets whether the zstd decoder should use low-memory mode (default: false).
func LoadWithDecoderLowmem(enabled bool) LoadOption {
	return func(cfg *loadConfig) {
		cfg.archiveOpts = append(cfg.archiveOpts, archive.WithDecoderLowmem(enabled))
	}
}

// --- Texture options (passed to texture.NewDecoder) ---

// LoadWithMaxPixels limits width*height of decoded textures.
// Set n to 0 to disable the limit.
func LoadWithMaxPixels(n int) LoadOption {
	return func(cfg *loadConfig) {
		cfg.decoderOpts = append(cfg.decoderOpts, texture.WithMaxPixels(n))
	}
}

// --- Registry options (passed to registry.New) ---

// LoadWithRegistryName labels the registry in logs and metrics.
func LoadWithRegistryName(name string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.regOpts = append(cfg.regOpts, registry.WithName(name))
	}
}

// LoadWithCapacity sets the registry's initial capacity.
func LoadWithCapacity(n int) LoadOption {
	return func(cfg *loadConfig) {
		cfg.regOpts = append(cfg.regOpts, registry.WithCapacity(n))
	}
}

// LoadWithLogger sets the logger propagated to the archive reader and registry.
func LoadWithLogger(logger *slog.Logger) LoadOption {
	return func(cfg *loadConfig) {
		cfg.logger = logger
	}
}
