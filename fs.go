package shelf

import (
	"os"

	"github.com/aigotowork/shelf/internal/fsutil"
)

// FileSystem is the filesystem contract the store consumes. The default
// implementation uses the local filesystem; tests inject fakes to exercise
// failure paths without touching the disk.
type FileSystem interface {
	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool

	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to path so that concurrent readers
	// observe either the prior content or the complete new content.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates the directory at path along with any missing
	// parents, like mkdir -p.
	MkdirAll(path string, perm os.FileMode) error

	// ListFiles returns the regular files in dir (non-recursive), sorted
	// by name.
	ListFiles(dir string) ([]string, error)

	// RemoveFile removes the file at path.
	RemoveFile(path string) error
}

// DefaultFileSystem returns the local-disk FileSystem used when none is
// injected.
func DefaultFileSystem() FileSystem {
	return osFS{}
}

// osFS implements FileSystem on the local disk via fsutil.
type osFS struct{}

func (osFS) Exists(path string) bool {
	return fsutil.Exists(path)
}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFS) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	return fsutil.AtomicWriteFile(path, data, perm)
}

func (osFS) MkdirAll(path string, perm os.FileMode) error {
	return fsutil.EnsureDir(path, perm)
}

func (osFS) ListFiles(dir string) ([]string, error) {
	return fsutil.ListFiles(dir)
}

func (osFS) RemoveFile(path string) error {
	return os.Remove(path)
}
