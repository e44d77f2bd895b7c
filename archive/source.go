package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ByteSource provides random access to archive bytes.
// SourceID must return a stable identifier for the underlying content.
type ByteSource interface {
	io.ReaderAt
	Size() int64
	SourceID() string
}

// fileSource wraps *os.File to implement ByteSource.
// os.File has ReadAt but not Size, so we cache the size at construction.
type fileSource struct {
	file     *os.File
	size     int64
	sourceID string
}

// newFileSource creates a fileSource from an open file.
func newFileSource(f *os.File) (*fileSource, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat archive: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", f.Name())
	}
	return &fileSource{file: f, size: info.Size(), sourceID: fileSourceID(f.Name(), info)}, nil
}

// ReadAt implements io.ReaderAt.
func (fs *fileSource) ReadAt(p []byte, off int64) (int, error) {
	return fs.file.ReadAt(p, off)
}

// Size returns the total size of the file.
func (fs *fileSource) Size() int64 {
	return fs.size
}

// SourceID returns a stable identifier for the file content.
func (fs *fileSource) SourceID() string {
	return fs.sourceID
}

// Close closes the underlying file.
func (fs *fileSource) Close() error {
	return fs.file.Close()
}

func fileSourceID(path string, info os.FileInfo) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	return fmt.Sprintf("file:%s:%d:%d", absPath, info.Size(), info.ModTime().UnixNano())
}

// memSource adapts a caller-supplied io.ReaderAt.
type memSource struct {
	io.ReaderAt
	size int64
}

func (m *memSource) Size() int64 { return m.size }

func (m *memSource) SourceID() string { return fmt.Sprintf("mem:%T:%d", m.ReaderAt, m.size) }

// Interface compliance.
var (
	_ ByteSource = (*fileSource)(nil)
	_ ByteSource = (*memSource)(nil)
)
