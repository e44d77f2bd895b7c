package archive

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zip"
	"github.com/opencontainers/go-digest"

	"github.com/gregoryfmartin/zipassets/internal/sizing"
	"github.com/gregoryfmartin/zipassets/metrics"
)

// Reader provides read-only access to the entries of a zip archive.
type Reader struct {
	source             ByteSource
	closer             io.Closer // nil for caller-owned sources
	zr                 *zip.Reader
	files              []*zip.File    // non-directory entries in central directory order
	byName             map[string]int // first position of each name
	maxFileSize        uint64
	maxDecoderMemory   uint64
	decoderConcurrency int
	decoderLowmem      bool
	logger             *slog.Logger
	closed             bool
}

// log returns the logger, falling back to a discard logger if nil.
func (r *Reader) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.logger
}

// Open opens the archive at path and verifies its structure.
//
// The returned Reader owns the file handle; Close must be called to release it.
// Every failure, including a failed consistency check, wraps ErrOpen.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	src, err := newFileSource(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	r, err := newReader(src, src, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// NewReader creates a Reader over size bytes of src.
//
// The caller keeps ownership of src; Close only marks the Reader closed.
func NewReader(src io.ReaderAt, size int64, opts ...Option) (*Reader, error) {
	if bs, ok := src.(ByteSource); ok && bs.Size() == size {
		return newReader(bs, nil, opts...)
	}
	return newReader(&memSource{ReaderAt: src, size: size}, nil, opts...)
}

func newReader(src ByteSource, closer io.Closer, opts ...Option) (*Reader, error) {
	r := &Reader{
		source:             src,
		closer:             closer,
		maxFileSize:        DefaultMaxFileSize,
		maxDecoderMemory:   DefaultMaxDecoderMemory,
		decoderConcurrency: 1,
	}
	for _, opt := range opts {
		opt(r)
	}

	zr, err := zip.NewReader(src, src.Size())
	if errors.Is(err, zip.ErrInsecurePath) && zr != nil {
		r.log().Warn("archive contains non-local entry names", "source", src.SourceID())
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrOpen, ErrCorrupt, err)
	}

	if err := checkConsistency(zr.File, src.Size(), r.maxFileSize); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	pool := newDecompressPool(r.maxDecoderMemory, r.decoderConcurrency, r.decoderLowmem)
	zr.RegisterDecompressor(methodZstd, pool.decompressor())
	zr.RegisterDecompressor(methodZstdPKWare, pool.decompressor())

	r.zr = zr
	r.byName = make(map[string]int, len(zr.File))
	for _, f := range zr.File {
		if isDir(f.Name) {
			continue
		}
		if _, dup := r.byName[f.Name]; dup {
			r.log().Warn("archive contains duplicate entry name", "name", f.Name)
		} else {
			r.byName[f.Name] = len(r.files)
		}
		r.files = append(r.files, f)
	}

	r.log().Debug("archive opened", "source", src.SourceID(), "entries", len(r.files))
	return r, nil
}

// Len returns the number of file entries in the archive.
// Directory entries are not counted.
func (r *Reader) Len() int {
	return len(r.files)
}

// Entries returns the archive's file entries in central directory order.
//
// Each call returns a fresh slice. Directory entries are omitted because
// they carry no payload. No decompression is performed.
func (r *Reader) Entries() ([]Entry, error) {
	if r.closed {
		return nil, ErrClosed
	}
	entries := make([]Entry, len(r.files))
	for i, f := range r.files {
		entries[i] = entryFromFile(f, i)
	}
	return entries, nil
}

// Lookup returns the entry for name after normalizing it with NormalizePath.
// Returns false if the entry does not exist or the Reader is closed.
func (r *Reader) Lookup(name string) (Entry, bool) {
	if r.closed {
		return Entry{}, false
	}
	pos, ok := r.byName[NormalizePath(name)]
	if !ok {
		return Entry{}, false
	}
	return entryFromFile(r.files[pos], pos), true
}

// ReadFile reads and returns the decompressed content of the named entry.
func (r *Reader) ReadFile(name string) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}
	e, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, name, ErrNotFound)
	}
	return r.ReadEntry(e)
}

// ReadEntry reads and returns the decompressed content of e.
//
// The whole payload is materialized. The declared size is not trusted for
// allocation: the buffer grows with the data actually decompressed, which
// must match the declared size exactly and pass its CRC-32 check. Failures
// wrap ErrRead.
func (r *Reader) ReadEntry(e Entry) ([]byte, error) {
	if r.closed {
		return nil, ErrClosed
	}

	f, ok := r.file(e)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, e.Name, ErrNotFound)
	}
	if r.maxFileSize > 0 && f.UncompressedSize64 > r.maxFileSize {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, f.Name, ErrSizeOverflow)
	}

	rc, err := f.Open()
	if err != nil {
		if errors.Is(err, zip.ErrAlgorithm) {
			return nil, fmt.Errorf("%w: %s: %w: %w", ErrRead, f.Name, ErrDecompression, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, f.Name, err)
	}
	defer rc.Close()

	cr := &countingReader{r: rc}
	data, err := sizing.ReadExact(cr, f.UncompressedSize64, ErrSizeOverflow)
	metrics.ArchiveBytesRead.Add(float64(cr.n))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, f.Name, mapReadError(err))
	}

	r.log().Debug("archive entry read", "name", f.Name, "method", methodName(f.Method), "bytes", len(data))
	return data, nil
}

// Digest returns the SHA-256 digest of e's decompressed content.
func (r *Reader) Digest(e Entry) (digest.Digest, error) {
	data, err := r.ReadEntry(e)
	if err != nil {
		return "", err
	}
	return digest.SHA256.FromBytes(data), nil
}

// SourceID returns the identifier of the underlying byte source.
func (r *Reader) SourceID() string {
	return r.source.SourceID()
}

// Close releases the archive's resources.
//
// Calling Close more than once is a no-op. After Close every read
// operation returns ErrClosed.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.files = nil
	r.byName = nil
	r.zr = nil
	if r.closer == nil {
		return nil
	}
	if err := r.closer.Close(); err != nil {
		return fmt.Errorf("archive: close: %w", err)
	}
	return nil
}

// Closed reports whether Close has been called.
func (r *Reader) Closed() bool {
	return r.closed
}

// file resolves e to its zip.File, preferring the recorded position.
func (r *Reader) file(e Entry) (*zip.File, bool) {
	if e.pos >= 0 && e.pos < len(r.files) && r.files[e.pos].Name == e.Name {
		return r.files[e.pos], true
	}
	pos, ok := r.byName[e.Name]
	if !ok {
		return nil, false
	}
	return r.files[pos], true
}

// mapReadError classifies a payload read failure.
func mapReadError(err error) error {
	switch {
	case errors.Is(err, sizing.ErrShort), errors.Is(err, sizing.ErrExtra), errors.Is(err, zip.ErrFormat):
		return fmt.Errorf("%w: %w", ErrSizeMismatch, err)
	case errors.Is(err, zip.ErrChecksum), errors.Is(err, ErrSizeOverflow), errors.Is(err, ErrDecompression):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrDecompression, err)
	}
}
