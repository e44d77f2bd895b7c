package render

import (
	"fmt"

	"github.com/gogpu/gg"
)

//go:generate go run go.uber.org/mock/mockgen -destination=rendermocks/window.go -package=rendermocks . Window

// Default window settings.
const (
	DefaultWidth          = 800
	DefaultHeight         = 600
	DefaultTitle          = "CSFML Zipped Assets Demo"
	DefaultFramerateLimit = 60
)

// EventType identifies a window event.
type EventType int

const (
	// EventNone is the zero event.
	EventNone EventType = iota
	// EventClosed is raised when the window is asked to close.
	EventClosed
)

func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventClosed:
		return "closed"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Event is a window event.
type Event struct {
	Type EventType
}

// Drawable is anything holding pixels that can be drawn.
type Drawable interface {
	Image() *gg.ImageBuf
}

// Sprite places a drawable at a position in the window.
type Sprite struct {
	Texture Drawable
	X, Y    float64
}

// NewSprite returns a sprite drawing d at the origin.
func NewSprite(d Drawable) *Sprite {
	return &Sprite{Texture: d}
}

// SetPosition moves the sprite.
func (s *Sprite) SetPosition(x, y float64) {
	s.X, s.Y = x, y
}

// WindowConfig describes a window.
type WindowConfig struct {
	Width          int
	Height         int
	Title          string
	FramerateLimit int
}

// DefaultWindowConfig returns the default window settings.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Title:          DefaultTitle,
		FramerateLimit: DefaultFramerateLimit,
	}
}

// Validate checks that the dimensions are positive and the framerate is
// not negative.
func (c WindowConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FramerateLimit < 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.FramerateLimit)
	}
	return nil
}

// Window is a render target with an event queue.
type Window interface {
	// IsOpen reports whether the window has not been closed.
	IsOpen() bool
	// PollEvent returns the next pending event, if any.
	PollEvent() (Event, bool)
	// Clear fills the frame with a color.
	Clear(c gg.RGBA)
	// DrawSprite draws a sprite into the current frame.
	DrawSprite(s *Sprite)
	// Display presents the current frame.
	Display() error
	// Close closes the window. Resources are kept until Destroy.
	Close()
	// Destroy releases the window's resources.
	Destroy() error
}
