package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/gregoryfmartin/zipassets/internal/testutil"
)

var red = color.NRGBA{R: 255, A: 255}

func encodeBMP(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func encodeGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{color.Black, red})
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   func(t *testing.T) []byte
		format string
		w, h   int
	}{
		{"png", func(t *testing.T) []byte { return testutil.PNG(t, 4, 3, red) }, "png", 4, 3},
		{"jpeg", func(t *testing.T) []byte { return testutil.JPEG(t, 8, 2, red) }, "jpeg", 8, 2},
		{"gif", func(t *testing.T) []byte { return encodeGIF(t, 5, 5) }, "gif", 5, 5},
		{"bmp", func(t *testing.T) []byte { return encodeBMP(t, 2, 7) }, "bmp", 2, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tex, err := Decode(tt.data(t))
			require.NoError(t, err)
			assert.Equal(t, tt.format, tex.Format())

			w, h := tex.Size()
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)

			require.NotNil(t, tex.Image())
			assert.Equal(t, tt.w, tex.Image().Width())
			assert.Equal(t, tt.h, tex.Image().Height())
		})
	}
}

func TestDecodePixels(t *testing.T) {
	t.Parallel()

	tex, err := Decode(testutil.PNG(t, 2, 2, red))
	require.NoError(t, err)

	r, g, b, a := tex.Image().GetRGBA(1, 1)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, [4]uint8{r, g, b, a})
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	png := testutil.PNG(t, 4, 4, red)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"nil", nil, ErrEmptyData},
		{"empty", []byte{}, ErrEmptyData},
		{"text", []byte("definitely not an image"), ErrDecode},
		{"truncated png", png[:len(png)/2], ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tex, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, tex)
		})
	}
}

func TestDecoderMaxPixels(t *testing.T) {
	t.Parallel()

	data := testutil.PNG(t, 10, 10, red)

	_, err := NewDecoder(WithMaxPixels(99)).Decode(data)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = NewDecoder(WithMaxPixels(100)).Decode(data)
	require.NoError(t, err)

	_, err = NewDecoder(WithMaxPixels(0)).Decode(data)
	require.NoError(t, err)
}

func TestReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	tex, err := Decode(testutil.PNG(t, 1, 1, red))
	require.NoError(t, err)
	assert.False(t, tex.Released())

	Dispose(tex)
	assert.True(t, tex.Released())
	assert.Nil(t, tex.Image())

	tex.Release()
	assert.True(t, tex.Released())

	w, h := tex.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	var nilTex *Texture
	nilTex.Release()
	assert.False(t, nilTex.Released())
	assert.Nil(t, nilTex.Image())
}
