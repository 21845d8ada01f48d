package testutil

import (
	"io/fs"
	"strings"
	"time"
)

// MockFileSystem is a test double for filecheck.FileSystem.
type MockFileSystem struct {
	StatFunc     func(name string) (fs.FileInfo, error)
	ReadFileFunc func(name string) ([]byte, error)
}

func (m *MockFileSystem) Stat(name string) (fs.FileInfo, error) { return m.StatFunc(name) }
func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if m.ReadFileFunc == nil {
		return nil, fs.ErrNotExist
	}
	return m.ReadFileFunc(name)
}

// MockFileInfo is a test double for fs.FileInfo.
type MockFileInfo struct {
	NameValue  string
	SizeValue  int64
	IsDirValue bool
}

func (m *MockFileInfo) Name() string { return m.NameValue }
func (m *MockFileInfo) Size() int64  { return m.SizeValue }
func (m *MockFileInfo) Mode() fs.FileMode {
	if m.IsDirValue {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (m *MockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *MockFileInfo) Sys() any           { return nil }
func (m *MockFileInfo) ModTime() time.Time { return time.Unix(0, 0) }

// StatFile returns a StatFunc reporting a regular file.
func StatFile(size int64) func(string) (fs.FileInfo, error) {
	return func(name string) (fs.FileInfo, error) {
		return &MockFileInfo{NameValue: name, SizeValue: size}, nil
	}
}

// StatDir returns a StatFunc reporting a directory.
func StatDir() func(string) (fs.FileInfo, error) {
	return func(name string) (fs.FileInfo, error) {
		return &MockFileInfo{NameValue: name, IsDirValue: true}, nil
	}
}

// StatErr returns a StatFunc that always fails with err.
func StatErr(err error) func(string) (fs.FileInfo, error) {
	return func(string) (fs.FileInfo, error) { return nil, err }
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
