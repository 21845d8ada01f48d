package filecheck

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads a file's contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // path comes from the operator
}

// IOFS adapts an fs.FS (for example fstest.MapFS) to FileSystem.
// Paths are converted to slash form before use.
type IOFS struct {
	FS fs.FS
}

// Stat returns file info for the given path.
func (i IOFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(i.FS, filepath.ToSlash(name))
}

// ReadFile reads a file's contents.
func (i IOFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(i.FS, filepath.ToSlash(name))
}
