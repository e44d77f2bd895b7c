package sizing

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOverflow = errors.New("overflow")

func TestToInt(t *testing.T) {
	t.Parallel()

	n, err := ToInt(42, errOverflow)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ToInt(math.MaxUint64, errOverflow)
	assert.ErrorIs(t, err, errOverflow)
}

func TestAddUint64(t *testing.T) {
	t.Parallel()

	sum, ok := AddUint64(1, 2)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), sum)

	_, ok = AddUint64(math.MaxUint64, 1)
	assert.False(t, ok)
}

func TestReadExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		size    uint64
		wantErr error
	}{
		{"exact", []byte("hello"), 5, nil},
		{"empty", nil, 0, nil},
		{"short", []byte("hel"), 5, ErrShort},
		{"empty but declared", nil, 3, ErrShort},
		{"extra", []byte("hello!"), 5, ErrExtra},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadExact(bytes.NewReader(tt.data), tt.size, errOverflow)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, int(tt.size))
		})
	}
}

type failAtEOF struct {
	r   io.Reader
	err error
}

func (f *failAtEOF) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, f.err
	}
	return n, err
}

func TestReadExactSurfacesEOFError(t *testing.T) {
	t.Parallel()

	errChecksum := errors.New("checksum")
	_, err := ReadExact(&failAtEOF{r: bytes.NewReader([]byte("abc")), err: errChecksum}, 3, errOverflow)
	assert.ErrorIs(t, err, errChecksum)
}

// endless yields zeros forever.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestReadExactUntrustedSize(t *testing.T) {
	t.Parallel()

	_, err := ReadExact(bytes.NewReader([]byte("tiny")), 1<<62, errOverflow)
	require.ErrorIs(t, err, ErrShort)

	_, err = ReadExact(bytes.NewReader(nil), math.MaxUint64, errOverflow)
	require.ErrorIs(t, err, errOverflow)

	_, err = ReadExact(endless{}, 3<<20, errOverflow)
	require.ErrorIs(t, err, ErrExtra, "reads stop one byte past the declared size")
}
