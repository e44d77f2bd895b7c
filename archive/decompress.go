package archive

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Zstandard method identifiers used inside zip archives.
const (
	methodZstd       = zstd.ZipMethodWinZip
	methodZstdPKWare = zstd.ZipMethodPKWare
)

// decompressPool manages reusable zstd decoders for zip entries.
type decompressPool struct {
	pool               sync.Pool
	maxDecoderMemory   uint64
	decoderConcurrency int
	decoderLowmem      bool
}

// newDecompressPool creates a pool for zstd decoders.
// If maxMemory is 0, no memory limit is applied to decoders.
func newDecompressPool(maxMemory uint64, concurrency int, lowmem bool) *decompressPool {
	if concurrency < 0 {
		concurrency = 0
	}
	return &decompressPool{
		maxDecoderMemory:   maxMemory,
		decoderConcurrency: concurrency,
		decoderLowmem:      lowmem,
	}
}

// get returns a decoder configured to read from r.
// The caller must call the returned release function when done.
// If an error is returned, no release function needs to be called.
func (p *decompressPool) get(r io.Reader) (*zstd.Decoder, func(), error) {
	if dec, ok := p.pool.Get().(*zstd.Decoder); ok {
		if err := dec.Reset(r); err == nil {
			return dec, p.releaser(dec), nil
		}
		// Reset failed, drop this one and create new
		dec.Close()
	}

	dec, err := p.newDecoder(r)
	if err != nil {
		return nil, nil, err
	}
	return dec, p.releaser(dec), nil
}

func (p *decompressPool) releaser(dec *zstd.Decoder) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			_ = dec.Reset(nil) //nolint:errcheck // clearing state before pool return
			p.pool.Put(dec)
		})
	}
}

// newDecoder creates a new zstd decoder with the configured limits.
func (p *decompressPool) newDecoder(r io.Reader) (*zstd.Decoder, error) {
	opts := []zstd.DOption{
		zstd.WithDecoderConcurrency(p.decoderConcurrency),
		zstd.WithDecoderLowmem(p.decoderLowmem),
	}
	if p.maxDecoderMemory != 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(p.maxDecoderMemory))
	}
	return zstd.NewReader(r, opts...)
}

// decompressor adapts the pool to the zip package's Decompressor signature.
func (p *decompressPool) decompressor() zip.Decompressor {
	return func(r io.Reader) io.ReadCloser {
		dec, release, err := p.get(r)
		if err != nil {
			return &errReadCloser{err: fmt.Errorf("%w: %w", ErrDecompression, err)}
		}
		return &pooledReadCloser{dec: dec, release: release}
	}
}

// pooledReadCloser returns its decoder to the pool on Close.
type pooledReadCloser struct {
	dec     *zstd.Decoder
	release func()
	closed  bool
}

func (rc *pooledReadCloser) Read(p []byte) (int, error) {
	if rc.closed {
		return 0, ErrClosed
	}
	return rc.dec.Read(p)
}

func (rc *pooledReadCloser) Close() error {
	if rc.closed {
		return nil
	}
	rc.closed = true
	rc.release()
	return nil
}

// errReadCloser fails every read with err.
type errReadCloser struct {
	err error
}

func (rc *errReadCloser) Read([]byte) (int, error) { return 0, rc.err }

func (rc *errReadCloser) Close() error { return nil }
