package archive

import "errors"

// Sentinel errors.
var (
	// ErrOpen is returned when an archive cannot be opened or fails its
	// consistency check.
	ErrOpen = errors.New("archive: open failed")

	// ErrRead is returned when an entry cannot be read.
	ErrRead = errors.New("archive: read failed")

	// ErrClosed is returned by every read operation after Close.
	ErrClosed = errors.New("archive: reader is closed")

	// ErrCorrupt is returned when the archive structure is inconsistent.
	ErrCorrupt = errors.New("archive: corrupt archive")

	// ErrNotFound is returned when an entry does not exist in the archive.
	ErrNotFound = errors.New("archive: entry not found")

	// ErrDecompression is returned when decompression fails.
	ErrDecompression = errors.New("archive: decompression failed")

	// ErrSizeMismatch is returned when an entry's payload length differs from
	// its declared size.
	ErrSizeMismatch = errors.New("archive: size mismatch")

	// ErrSizeOverflow is returned when a declared size exceeds the configured
	// limit or the platform's addressable range.
	ErrSizeOverflow = errors.New("archive: size overflow")
)
