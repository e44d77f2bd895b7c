package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// DefaultMaxPixels caps width*height for decoded images (64 Mpx).
const DefaultMaxPixels = 64 << 20

// Texture is a decoded image.
type Texture struct {
	buf      *gg.ImageBuf
	format   string
	width    int
	height   int
	released bool
}

// Image returns the pixel buffer, or nil once the texture is released.
func (t *Texture) Image() *gg.ImageBuf {
	if t == nil || t.released {
		return nil
	}
	return t.buf
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Format returns the name of the format the texture was decoded from,
// such as "png" or "jpeg".
func (t *Texture) Format() string {
	return t.format
}

// Release drops the pixel buffer. It is safe to call more than once.
func (t *Texture) Release() {
	if t == nil {
		return
	}
	t.released = true
	t.buf = nil
}

// Released reports whether Release has been called.
func (t *Texture) Released() bool {
	return t != nil && t.released
}

// Dispose releases t. It has the shape a registry expects of a disposer.
func Dispose(t *Texture) {
	t.Release()
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxPixels limits width*height of accepted images.
// Zero disables the limit.
func WithMaxPixels(n int) Option {
	return func(d *Decoder) {
		if n >= 0 {
			d.maxPixels = n
		}
	}
}

// Decoder decodes image payloads into textures.
type Decoder struct {
	maxPixels int
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{maxPixels: DefaultMaxPixels}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Decode decodes data with the default limits.
func Decode(data []byte) (*Texture, error) {
	return defaultDecoder.Decode(data)
}

// Decode decodes data into a texture.
//
// The image header is inspected before the full decode so oversized images
// are rejected without allocating their pixels. data is not retained.
func (d *Decoder) Decode(data []byte) (*Texture, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s image has no pixels (%dx%d)", ErrDecode, format, cfg.Width, cfg.Height)
	}
	if d.maxPixels > 0 && cfg.Width > d.maxPixels/cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, d.maxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	b := img.Bounds()
	return &Texture{
		buf:    gg.ImageBufFromImage(img),
		format: format,
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}
