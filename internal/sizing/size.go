// Package sizing provides overflow-safe size arithmetic and bounded reads.
package sizing

import (
	"errors"
	"io"
	"math"
)

// ErrShort is returned by ReadExact when the reader ends before size bytes.
var ErrShort = errors.New("short read")

// ErrExtra is returned by ReadExact when the reader yields more bytes than
// declared.
var ErrExtra = errors.New("unexpected trailing data")

// ToInt converts a uint64 to int, returning overflowErr if it doesn't fit.
func ToInt(size uint64, overflowErr error) (int, error) {
	if size > uint64(math.MaxInt) {
		return 0, overflowErr
	}
	return int(size), nil
}

// AddUint64 adds two uint64 values, returning (result, false) on overflow.
func AddUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// maxInitialAlloc caps the buffer allocated up front from a declared size.
const maxInitialAlloc = 1 << 20

// ReadExact reads exactly size bytes from r and confirms r is exhausted.
//
// size is untrusted: at most maxInitialAlloc bytes are allocated up front and
// the buffer grows only as data actually arrives, with reads limited to
// size+1 bytes. A reader that ends early yields ErrShort; one that keeps going
// yields ErrExtra. Errors surfaced at EOF (for example a checksum failure)
// are returned as-is.
func ReadExact(r io.Reader, size uint64, overflowErr error) ([]byte, error) {
	if size > uint64(math.MaxInt-1) {
		return nil, overflowErr
	}
	lr := &io.LimitedReader{R: r, N: int64(size) + 1} //nolint:gosec // checked above

	buf := make([]byte, 0, min(size, maxInitialAlloc))
	for {
		if len(buf) == cap(buf) {
			buf = append(buf, 0)[:len(buf)]
		}
		n, err := lr.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, ErrShort
			}
			return nil, err
		}
	}

	switch got := uint64(len(buf)); {
	case got > size:
		return nil, ErrExtra
	case got < size:
		return nil, ErrShort
	}
	return buf, nil
}
