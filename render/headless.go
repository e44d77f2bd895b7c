package render

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/gg"
)

// Headless is a Window that renders into an off-screen gg context.
type Headless struct {
	cfg       WindowConfig
	dc        *gg.Context
	events    []Event
	open      bool
	destroyed bool
	frames    int
	lastFrame time.Time

	maxFrames int
	snapshot  string
	logger    *slog.Logger
}

var _ Window = (*Headless)(nil)

// NewHeadless creates an open off-screen window.
func NewHeadless(cfg WindowConfig, opts ...HeadlessOption) (*Headless, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Headless{
		cfg:  cfg,
		dc:   gg.NewContext(cfg.Width, cfg.Height),
		open: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log().Debug("headless window created",
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "framerate", cfg.FramerateLimit)
	return h, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (h *Headless) log() *slog.Logger {
	if h.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return h.logger
}

// Config returns the window configuration.
func (h *Headless) Config() WindowConfig {
	return h.cfg
}

// IsOpen reports whether the window has not been closed.
func (h *Headless) IsOpen() bool {
	return h.open && !h.destroyed
}

// Push queues an event for PollEvent.
func (h *Headless) Push(e Event) {
	h.events = append(h.events, e)
}

// PollEvent pops the oldest queued event.
func (h *Headless) PollEvent() (Event, bool) {
	if len(h.events) == 0 {
		return Event{}, false
	}
	e := h.events[0]
	h.events = h.events[1:]
	return e, true
}

// Clear fills the frame with c.
func (h *Headless) Clear(c gg.RGBA) {
	if h.destroyed {
		return
	}
	h.dc.ClearWithColor(c)
}

// DrawSprite draws s at its position. Sprites without pixels are skipped.
func (h *Headless) DrawSprite(s *Sprite) {
	if h.destroyed || s == nil || s.Texture == nil {
		return
	}
	img := s.Texture.Image()
	if img == nil {
		h.log().Debug("skipping sprite without pixels")
		return
	}
	h.dc.DrawImage(img, s.X, s.Y)
}

// Display presents the frame, sleeping as needed to honour the framerate
// limit. Once the frame limit is reached an EventClosed is queued.
func (h *Headless) Display() error {
	if h.destroyed {
		return ErrDestroyed
	}

	if h.cfg.FramerateLimit > 0 && !h.lastFrame.IsZero() {
		interval := time.Second / time.Duration(h.cfg.FramerateLimit)
		if wait := interval - time.Since(h.lastFrame); wait > 0 {
			time.Sleep(wait)
		}
	}
	h.lastFrame = time.Now()
	h.frames++

	if h.maxFrames > 0 && h.frames == h.maxFrames {
		h.log().Debug("frame limit reached", "frames", h.frames)
		h.Push(Event{Type: EventClosed})
	}
	return nil
}

// Frames returns the number of frames displayed.
func (h *Headless) Frames() int {
	return h.frames
}

// Image returns the current frame, or nil after Destroy.
func (h *Headless) Image() image.Image {
	if h.destroyed {
		return nil
	}
	return h.dc.Image()
}

// Close closes the window. Further calls are no-ops.
func (h *Headless) Close() {
	h.open = false
}

// Destroy writes the snapshot if one was requested and releases the
// drawing context. A second call returns ErrDestroyed.
func (h *Headless) Destroy() error {
	if h.destroyed {
		return ErrDestroyed
	}
	h.destroyed = true
	h.open = false
	h.events = nil

	var errs []error
	if h.snapshot != "" {
		if err := h.dc.SavePNG(h.snapshot); err != nil {
			errs = append(errs, fmt.Errorf("render: save snapshot: %w", err))
		} else {
			h.log().Info("snapshot written", "path", h.snapshot, "frames", h.frames)
		}
	}
	if err := h.dc.Close(); err != nil {
		errs = append(errs, fmt.Errorf("render: close context: %w", err))
	}
	h.dc = nil
	return errors.Join(errs...)
}
