package zipassets

import (
	"github.com/gregoryfmartin/zipassets/archive"
	"github.com/gregoryfmartin/zipassets/registry"
	"github.com/gregoryfmartin/zipassets/texture"
)

// Errors re-exported from archive.
var (
	// ErrOpen is returned when an archive cannot be opened or fails verification.
	ErrOpen = archive.ErrOpen

	// ErrRead is returned when an entry cannot be read.
	ErrRead = archive.ErrRead

	// ErrClosed is returned when an archive is used after Close.
	ErrClosed = archive.ErrClosed

	// ErrCorrupt is returned when archive structures are inconsistent.
	ErrCorrupt = archive.ErrCorrupt

	// ErrDecompression is returned when an entry fails to decompress.
	ErrDecompression = archive.ErrDecompression

	// ErrSizeMismatch is returned when an entry's payload does not match its declared size.
	ErrSizeMismatch = archive.ErrSizeMismatch

	// ErrSizeOverflow is returned when a size exceeds the configured limit.
	ErrSizeOverflow = archive.ErrSizeOverflow
)

// Errors re-exported from registry.
var (
	// ErrNotFound is returned when no registry entry has the requested name.
	ErrNotFound = registry.ErrNotFound

	// ErrIndexOutOfRange is returned when a registry index is outside [0, Len()).
	ErrIndexOutOfRange = registry.ErrIndexOutOfRange

	// ErrDuplicateName is returned when inserting a name that is already present.
	ErrDuplicateName = registry.ErrDuplicateName

	// ErrDecode is returned when a payload cannot be decoded into a handle.
	ErrDecode = registry.ErrDecode

	// ErrDestroyed is returned when a registry is used after Destroy.
	ErrDestroyed = registry.ErrDestroyed
)

// Errors re-exported from texture.
var (
	// ErrEmptyData is returned when an image payload has no bytes.
	ErrEmptyData = texture.ErrEmptyData

	// ErrTooLarge is returned when an image exceeds the pixel limit.
	ErrTooLarge = texture.ErrTooLarge
)
