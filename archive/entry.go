package archive

import (
	"time"

	"github.com/klauspost/compress/zip"
)

// Entry describes a file in the archive.
//
// Entries are snapshots of central directory metadata. They are returned by
// value and stay valid after the Reader is closed, although reading them then
// fails with ErrClosed.
type Entry struct {
	// Name is the entry path as stored in the archive (e.g. "sprites/hero.png").
	Name string

	// Size is the declared uncompressed size in bytes.
	Size uint64

	// CompressedSize is the size of the stored payload in bytes.
	CompressedSize uint64

	// Method is the zip compression method identifier.
	Method uint16

	// CRC32 is the declared checksum of the uncompressed payload.
	CRC32 uint32

	// Modified is the entry's modification time.
	Modified time.Time

	// pos is the entry's position in its Reader. It is only trusted when the
	// name at that position matches.
	pos int
}

// Compressed reports whether the payload is stored with a compression method.
func (e Entry) Compressed() bool {
	return e.Method != zip.Store
}

// MethodName returns a human-readable name for the compression method.
func (e Entry) MethodName() string {
	return methodName(e.Method)
}

func methodName(m uint16) string {
	switch m {
	case zip.Store:
		return "store"
	case zip.Deflate:
		return "deflate"
	case methodZstd, methodZstdPKWare:
		return "zstd"
	default:
		return "unknown"
	}
}

func entryFromFile(f *zip.File, pos int) Entry {
	return Entry{
		Name:           f.Name,
		Size:           f.UncompressedSize64,
		CompressedSize: f.CompressedSize64,
		Method:         f.Method,
		CRC32:          f.CRC32,
		Modified:       f.Modified,
		pos:            pos,
	}
}
