package archive

import (
	"fmt"

	"github.com/klauspost/compress/zip"

	"github.com/gregoryfmartin/zipassets/internal/sizing"
)

// checkConsistency verifies every entry against the archive bounds.
//
// It reads each local file header, confirms the payload lies inside the
// archive, and applies the per-entry size limit. For stored entries the
// compressed and uncompressed sizes must agree.
func checkConsistency(files []*zip.File, archiveSize int64, maxFileSize uint64) error {
	if archiveSize < 0 {
		return ErrSizeOverflow
	}
	for _, f := range files {
		if err := checkFile(f, uint64(archiveSize), maxFileSize); err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return nil
}

func checkFile(f *zip.File, archiveSize, maxFileSize uint64) error {
	if f.Name == "" {
		return fmt.Errorf("%w: empty entry name", ErrCorrupt)
	}

	off, err := f.DataOffset()
	if err != nil {
		return fmt.Errorf("%w: local header: %w", ErrCorrupt, err)
	}
	if off < 0 {
		return fmt.Errorf("%w: negative data offset", ErrCorrupt)
	}
	end, ok := sizing.AddUint64(uint64(off), f.CompressedSize64)
	if !ok || end > archiveSize {
		return fmt.Errorf("%w: payload extends past end of archive", ErrCorrupt)
	}

	if maxFileSize > 0 && (f.UncompressedSize64 > maxFileSize || f.CompressedSize64 > maxFileSize) {
		return ErrSizeOverflow
	}

	if f.Method == zip.Store && f.CompressedSize64 != f.UncompressedSize64 {
		return fmt.Errorf("%w: stored entry size mismatch", ErrCorrupt)
	}
	return nil
}
