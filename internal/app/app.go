// Package app runs the texture preview: it loads textures from an archive
// and draws one of them into a window until the window closes.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gregoryfmartin/zipassets"
	"github.com/gregoryfmartin/zipassets/internal/config"
	"github.com/gregoryfmartin/zipassets/metrics"
	"github.com/gregoryfmartin/zipassets/registry"
	"github.com/gregoryfmartin/zipassets/render"
	"github.com/gregoryfmartin/zipassets/texture"
)

// ErrSpriteNotFound is returned when the configured sprite texture is not loaded.
var ErrSpriteNotFound = errors.New("app: sprite texture not found")

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used by the app and the packages it drives.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// App owns the loaded textures and the window for the lifetime of a run.
type App struct {
	cfg      *config.Config
	win      render.Window
	textures *zipassets.Textures
	report   *registry.Report
	sprite   *render.Sprite
	logger   *slog.Logger
	closed   bool
}

// New loads the configured archive into a texture registry and selects the
// sprite to draw.
//
// The app takes ownership of win. If New fails, win is left untouched and
// everything loaded so far is released.
func New(cfg *config.Config, win render.Window, opts ...Option) (*App, error) {
	a := &App{cfg: cfg, win: win}
	for _, opt := range opts {
		opt(a)
	}

	loadOpts := []zipassets.LoadOption{
		zipassets.LoadWithExtensions(cfg.Extensions...),
		zipassets.LoadWithMaxFileSize(cfg.MaxFileSize),
		zipassets.LoadWithMaxPixels(cfg.MaxPixels),
	}
	if a.logger != nil {
		loadOpts = append(loadOpts, zipassets.LoadWithLogger(a.logger))
	}

	textures, report, err := zipassets.LoadTextures(cfg.Archive, loadOpts...)
	if err != nil {
		return nil, err
	}
	a.textures = textures
	a.report = report

	for _, diag := range report.Diagnostics {
		a.log().Warn("texture skipped", "error", diag)
	}
	a.log().Info("textures loaded",
		"archive", cfg.Archive,
		"loaded", textures.Len(),
		"duplicates", len(report.Duplicates),
		"filtered", report.Filtered,
		"failed", len(report.Diagnostics))

	tex, err := a.selectSprite()
	if err != nil {
		_ = textures.Destroy()
		return nil, err
	}
	a.sprite = render.NewSprite(tex)
	a.sprite.SetPosition(cfg.Sprite.X, cfg.Sprite.Y)

	return a, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (a *App) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.logger
}

func (a *App) selectSprite() (*texture.Texture, error) {
	if name := a.cfg.Sprite.Name; name != "" {
		tex, err := a.textures.Get(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSpriteNotFound, err)
		}
		return tex, nil
	}

	tex, err := a.textures.At(a.cfg.Sprite.Index)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSpriteNotFound, err)
	}
	return tex, nil
}

// Textures returns the loaded texture registry.
func (a *App) Textures() *zipassets.Textures {
	return a.textures
}

// Report returns the result of loading the archive.
func (a *App) Report() *registry.Report {
	return a.report
}

// Sprite returns the sprite drawn each frame.
func (a *App) Sprite() *render.Sprite {
	return a.sprite
}

// Run drives the window until it closes.
//
// Each frame drains pending events, clears to black, draws the sprite and
// displays the result. A close event closes the window; so does ctx being
// cancelled, which is treated as a normal shutdown.
func (a *App) Run(ctx context.Context) error {
	frames := 0
	for a.win.IsOpen() {
		if ctx.Err() != nil {
			a.log().Info("shutting down", "reason", context.Cause(ctx))
			a.win.Close()
			break
		}

		for {
			ev, ok := a.win.PollEvent()
			if !ok {
				break
			}
			if ev.Type == render.EventClosed {
				a.log().Debug("window close requested")
				a.win.Close()
			}
		}

		a.win.Clear(gg.Black)
		a.win.DrawSprite(a.sprite)
		if err := a.win.Display(); err != nil {
			return fmt.Errorf("display frame %d: %w", frames, err)
		}
		frames++
	}

	a.log().Debug("render loop finished", "frames", frames)
	return nil
}

// Close releases the textures and the window and writes the metrics file
// when one is configured. Calling Close more than once is a no-op.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	if err := a.textures.Destroy(); err != nil {
		errs = append(errs, err)
	}
	if err := a.win.Destroy(); err != nil {
		errs = append(errs, err)
	}
	if a.cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(a.cfg.MetricsFile); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		} else {
			a.log().Debug("metrics written", "path", a.cfg.MetricsFile)
		}
	}
	return errors.Join(errs...)
}
