package zipassets

import (
	"errors"

	"github.com/gregoryfmartin/zipassets/archive"
	"github.com/gregoryfmartin/zipassets/registry"
	"github.com/gregoryfmartin/zipassets/texture"
)

// Textures is a registry of decoded textures.
type Textures = registry.Registry[*texture.Texture]

// LoadTextures opens the archive at path and loads every entry whose name
// ends in one of the accepted extensions as a texture.
//
// The archive is closed before returning. Per-entry failures are collected
// in the report and skipped. An error is returned only when the archive
// cannot be opened, enumerated or closed; in that case no registry is
// returned and every texture loaded so far has been released.
func LoadTextures(path string, opts ...LoadOption) (*Textures, *registry.Report, error) {
	cfg := loadConfig{extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(&cfg)
	}

	archiveOpts := cfg.archiveOpts
	regOpts := append([]registry.Option{registry.WithName("textures")}, cfg.regOpts...)
	if cfg.logger != nil {
		archiveOpts = append(archiveOpts, archive.WithLogger(cfg.logger))
		regOpts = append(regOpts, registry.WithLogger(cfg.logger))
	}

	r, err := archive.Open(path, archiveOpts...)
	if err != nil {
		return nil, nil, err
	}

	textures := registry.New(texture.Dispose, regOpts...)
	decoder := texture.NewDecoder(cfg.decoderOpts...)

	report, err := textures.Populate(r, registry.MatchSuffix(cfg.extensions...), decoder.Decode)
	if cerr := r.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		_ = textures.Destroy()
		return nil, nil, err
	}
	return textures, report, nil
}
