// Package testutil builds zip archives and image payloads for tests.
package testutil

import (
	"bytes"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Method identifiers accepted by TestEntry.
const (
	Store   = zip.Store
	Deflate = zip.Deflate
	Zstd    = zstd.ZipMethodWinZip
)

// TestEntry describes one file written by BuildZip.
type TestEntry struct {
	Name   string
	Data   []byte
	Method uint16

	// DeclaredSize, when non-zero, overrides the uncompressed size written
	// to the headers. The entry is written raw so the lie survives.
	DeclaredSize uint64

	// CRC32, when non-zero, overrides the checksum written to the headers.
	CRC32 uint32
}

// BuildZip returns a zip archive containing entries in order.
func BuildZip(tb testing.TB, entries ...TestEntry) []byte {
	tb.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	w.RegisterCompressor(Zstd, zstd.ZipCompressor())

	for _, e := range entries {
		if e.DeclaredSize != 0 || e.CRC32 != 0 {
			writeRaw(tb, w, e)
			continue
		}
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.Name, Method: e.Method})
		if err != nil {
			tb.Fatalf("create %s: %v", e.Name, err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			tb.Fatalf("write %s: %v", e.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		tb.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// writeRaw writes a pre-compressed entry with caller-controlled headers.
func writeRaw(tb testing.TB, w *zip.Writer, e TestEntry) {
	tb.Helper()

	payload := e.Data
	if e.Method == Deflate {
		var cbuf bytes.Buffer
		fw, err := flate.NewWriter(&cbuf, flate.DefaultCompression)
		if err != nil {
			tb.Fatalf("flate writer: %v", err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			tb.Fatalf("flate write: %v", err)
		}
		if err := fw.Close(); err != nil {
			tb.Fatalf("flate close: %v", err)
		}
		payload = cbuf.Bytes()
	} else if e.Method != Store {
		tb.Fatalf("raw entries support store and deflate only, got %d", e.Method)
	}

	size := uint64(len(e.Data))
	if e.DeclaredSize != 0 {
		size = e.DeclaredSize
	}
	sum := crc32.ChecksumIEEE(e.Data)
	if e.CRC32 != 0 {
		sum = e.CRC32
	}

	fw, err := w.CreateRaw(&zip.FileHeader{
		Name:               e.Name,
		Method:             e.Method,
		CRC32:              sum,
		CompressedSize64:   uint64(len(payload)),
		UncompressedSize64: size,
	})
	if err != nil {
		tb.Fatalf("create raw %s: %v", e.Name, err)
	}
	if _, err := fw.Write(payload); err != nil {
		tb.Fatalf("write raw %s: %v", e.Name, err)
	}
}

// WriteZip writes a zip archive built from entries into dir and returns its path.
func WriteZip(tb testing.TB, dir string, entries ...TestEntry) string {
	tb.Helper()

	path := filepath.Join(dir, "assets.zip")
	if err := os.WriteFile(path, BuildZip(tb, entries...), 0o644); err != nil {
		tb.Fatalf("write zip: %v", err)
	}
	return path
}

// PNG returns a w×h PNG filled with c.
func PNG(tb testing.TB, w, h int, c color.Color) []byte {
	tb.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, filled(w, h, c)); err != nil {
		tb.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// JPEG returns a w×h JPEG filled with c.
func JPEG(tb testing.TB, w, h int, c color.Color) []byte {
	tb.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, filled(w, h, c), nil); err != nil {
		tb.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func filled(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

// Disposals counts release calls per handle for ownership tests.
type Disposals[T comparable] struct {
	calls map[T]int
	order []T
}

// NewDisposals returns an empty counter.
func NewDisposals[T comparable]() *Disposals[T] {
	return &Disposals[T]{calls: make(map[T]int)}
}

// Dispose records one release of h.
func (d *Disposals[T]) Dispose(h T) {
	d.calls[h]++
	d.order = append(d.order, h)
}

// Total returns the number of release calls.
func (d *Disposals[T]) Total() int {
	return len(d.order)
}

// Count returns how often h was released.
func (d *Disposals[T]) Count(h T) int {
	return d.calls[h]
}

// Order returns handles in release order.
func (d *Disposals[T]) Order() []T {
	return append([]T(nil), d.order...)
}
