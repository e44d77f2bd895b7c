package archive

import (
	"errors"
	"io"
)

// errCounterOverflow indicates a counter exceeded its maximum value.
var errCounterOverflow = errors.New("counter overflow")

// countingReader wraps a reader and counts bytes read.
type countingReader struct {
	r io.Reader
	n uint64
}

// Read implements io.Reader.
func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		//nolint:gosec // n is guaranteed non-negative by io.Reader contract
		if cr.n > ^uint64(0)-uint64(n) {
			return n, errCounterOverflow
		}
		cr.n += uint64(n) //nolint:gosec // overflow checked above
	}
	return n, err
}
