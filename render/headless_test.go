package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solid is a Drawable filled with one color.
type solid struct {
	buf *gg.ImageBuf
}

func (s solid) Image() *gg.ImageBuf { return s.buf }

func newSolid(w, h int, c color.Color) solid {
	img := gg.NewContext(w, h)
	img.ClearWithColor(gg.FromColor(c))
	return solid{buf: gg.ImageBufFromImage(img.Image())}
}

func testConfig() WindowConfig {
	return WindowConfig{Width: 16, Height: 12, Title: "test"}
}

func TestWindowConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultWindowConfig().Validate())

	tests := []WindowConfig{
		{Width: 0, Height: 10},
		{Width: 10, Height: -1},
		{Width: 10, Height: 10, FramerateLimit: -5},
	}
	for _, cfg := range tests {
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "%+v", cfg)
		_, err := NewHeadless(cfg)
		require.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestHeadlessEvents(t *testing.T) {
	t.Parallel()

	h, err := NewHeadless(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Destroy() })

	_, ok := h.PollEvent()
	assert.False(t, ok)

	h.Push(Event{Type: EventNone})
	h.Push(Event{Type: EventClosed})

	e, ok := h.PollEvent()
	require.True(t, ok)
	assert.Equal(t, EventNone, e.Type)
	e, ok = h.PollEvent()
	require.True(t, ok)
	assert.Equal(t, EventClosed, e.Type)
	_, ok = h.PollEvent()
	assert.False(t, ok)
}

func TestHeadlessMaxFrames(t *testing.T) {
	t.Parallel()

	h, err := NewHeadless(testConfig(), WithMaxFrames(3))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Destroy() })

	for i := range 3 {
		_, ok := h.PollEvent()
		require.False(t, ok, "frame %d", i)
		require.NoError(t, h.Display())
	}

	e, ok := h.PollEvent()
	require.True(t, ok)
	assert.Equal(t, EventClosed, e.Type)
	assert.Equal(t, 3, h.Frames())

	assert.True(t, h.IsOpen())
	h.Close()
	assert.False(t, h.IsOpen())
	h.Close()
}

func TestHeadlessDrawsSprite(t *testing.T) {
	t.Parallel()

	h, err := NewHeadless(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Destroy() })

	h.Clear(gg.Black)
	s := NewSprite(newSolid(4, 4, color.NRGBA{R: 255, A: 255}))
	s.SetPosition(8, 4)
	h.DrawSprite(s)
	h.DrawSprite(nil)
	h.DrawSprite(&Sprite{Texture: solid{}})
	require.NoError(t, h.Display())

	img := h.Image()
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0, 0xffff}, [4]uint32{r, g, b, a}, "background")

	r, _, _, _ = img.At(10, 6).RGBA()
	assert.Greater(t, r, uint32(0x8000), "sprite pixel")
}

func TestHeadlessSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "frame.png")
	h, err := NewHeadless(testConfig(), WithSnapshot(path))
	require.NoError(t, err)

	h.Clear(gg.Black)
	require.NoError(t, h.Display())
	require.NoError(t, h.Destroy())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 12, cfg.Height)
}

func TestHeadlessDestroy(t *testing.T) {
	t.Parallel()

	h, err := NewHeadless(testConfig())
	require.NoError(t, err)

	require.NoError(t, h.Destroy())
	assert.False(t, h.IsOpen())
	assert.Nil(t, h.Image())
	require.ErrorIs(t, h.Display(), ErrDestroyed)
	require.ErrorIs(t, h.Destroy(), ErrDestroyed)

	h.Clear(gg.Black)
	h.DrawSprite(NewSprite(newSolid(1, 1, color.White)))
}

func TestEventTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", EventNone.String())
	assert.Equal(t, "closed", EventClosed.String())
	assert.Equal(t, "event(9)", EventType(9).String())
}
