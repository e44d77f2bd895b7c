// Package config loads the zipassets application configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SladkyCitron/slogcolor"
	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"golang.org/x/term"

	"github.com/gregoryfmartin/zipassets"
	"github.com/gregoryfmartin/zipassets/archive"
	"github.com/gregoryfmartin/zipassets/render"
	"github.com/gregoryfmartin/zipassets/texture"
)

const (
	// DefaultArchive is the archive loaded when none is configured
	DefaultArchive = "./assets.zip"

	// DefaultSpriteIndex selects the third image in the archive
	DefaultSpriteIndex = 2

	// DefaultSpriteX and DefaultSpriteY position the sprite
	DefaultSpriteX = 50
	DefaultSpriteY = 50
)

// Config holds the application configuration
type Config struct {
	// Archive is the path to the zip archive holding the textures
	Archive string `yaml:"archive"`

	// Extensions lists the entry name suffixes loaded as textures, matched case-insensitively
	Extensions []string `yaml:"extensions"`

	// MaxFileSize limits the uncompressed size of a single entry in bytes, 0 disables the limit
	MaxFileSize uint64 `yaml:"max_file_size"`

	// MaxPixels limits width*height of a decoded texture, 0 disables the limit
	MaxPixels int `yaml:"max_pixels"`

	// Window configures the render window
	Window Window `yaml:"window"`

	// Sprite selects and positions the texture that is drawn
	Sprite Sprite `yaml:"sprite"`

	// LogLevel is the log level to use
	// Valid values: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// MetricsFile is an optional path the Prometheus metrics are written to on exit
	MetricsFile string `yaml:"metrics_file"`
}

// Window configures the render window
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Framerate int    `yaml:"framerate"`

	// Frames closes the window after this many frames, 0 runs until the process is interrupted
	Frames int `yaml:"frames"`

	// Snapshot is an optional PNG path the last frame is saved to
	Snapshot string `yaml:"snapshot"`
}

// Sprite selects the drawn texture by name, or by 0-based index when no name is set
type Sprite struct {
	Name  string  `yaml:"name"`
	Index int     `yaml:"index"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Archive:     DefaultArchive,
		Extensions:  append([]string(nil), zipassets.DefaultExtensions...),
		MaxFileSize: archive.DefaultMaxFileSize,
		MaxPixels:   texture.DefaultMaxPixels,
		Window: Window{
			Width:     render.DefaultWidth,
			Height:    render.DefaultHeight,
			Title:     render.DefaultTitle,
			Framerate: render.DefaultFramerateLimit,
		},
		Sprite: Sprite{
			Index: DefaultSpriteIndex,
			X:     DefaultSpriteX,
			Y:     DefaultSpriteY,
		},
		LogLevel: "info",
	}
}

// ParseConfig parses YAML over the defaults and validates the result
func ParseConfig(c []byte) (*Config, error) {
	cfg := Default()

	if len(bytes.TrimSpace(c)) > 0 {
		err := yaml.Unmarshal(c, cfg)
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the file at path, an empty path or a missing
// default file yields the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
		c, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return ParseConfig(nil)
		}
		if err != nil {
			return nil, err
		}
		return ParseConfig(c)
	}

	c, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// DefaultPath is the per user configuration file
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "zipassets", "config.yaml")
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Archive == "" {
		return fmt.Errorf("archive must be set")
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must list at least one suffix")
	}

	for _, ext := range c.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("extensions may not contain empty values")
		}
	}

	if c.MaxPixels < 0 {
		return fmt.Errorf("max_pixels may not be negative")
	}

	err := c.WindowConfig().Validate()
	if err != nil {
		return err
	}

	if c.Window.Frames < 0 {
		return fmt.Errorf("window frames may not be negative")
	}

	if c.Sprite.Name == "" && c.Sprite.Index < 0 {
		return fmt.Errorf("sprite index may not be negative")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}

	return nil
}

// RunsUntilInterrupted is true when no frame limit is set, so the
// off-screen window only closes when the process is interrupted
func (c *Config) RunsUntilInterrupted() bool {
	return c.Window.Frames == 0
}

// WindowConfig returns the render window settings
func (c *Config) WindowConfig() render.WindowConfig {
	return render.WindowConfig{
		Width:          c.Window.Width,
		Height:         c.Window.Height,
		Title:          c.Window.Title,
		FramerateLimit: c.Window.Framerate,
	}
}

// Level is the slog level for LogLevel
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger creates a colored logger on terminals and a text logger otherwise
func (c *Config) NewLogger() *slog.Logger {
	return NewLogger(c.Level())
}

// NewLogger creates a colored logger on terminals and a text logger otherwise
func NewLogger(level slog.Level) *slog.Logger {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return slog.New(slogcolor.NewHandler(os.Stdout, &slogcolor.Options{
			Level: level,
		}))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
