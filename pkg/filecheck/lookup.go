package filecheck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vertti/edatcheck/pkg/check"
)

// Lookup stats path and checks it is a directory (wantDir) or a regular
// file. Failures are returned as *check.Error so callers can classify them:
// a missing path or one of the wrong type is KindMissingDirectory or
// KindMissingFile, anything else is KindUnexpected.
func Lookup(fsys FileSystem, path string, wantDir bool) (fs.FileInfo, error) {
	missing := check.KindMissingFile
	if wantDir {
		missing = check.KindMissingDirectory
	}

	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &check.Error{Kind: missing, Path: path, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &check.Error{Kind: check.KindUnexpected, Path: path, Err: fmt.Errorf("permission denied: %w", err)}
		}
		return nil, &check.Error{Kind: check.KindUnexpected, Path: path, Err: fmt.Errorf("stat failed: %w", err)}
	}

	switch {
	case wantDir && !info.IsDir():
		return nil, &check.Error{Kind: missing, Path: path, Err: errors.New("expected directory, got file")}
	case !wantDir && !info.Mode().IsRegular():
		return nil, &check.Error{Kind: missing, Path: path, Err: errors.New("expected file, got directory")}
	}
	return info, nil
}

// ReadFile looks up path as a regular file and returns its contents.
func ReadFile(fsys FileSystem, path string) ([]byte, error) {
	if _, err := Lookup(fsys, path, false); err != nil {
		return nil, err
	}
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &check.Error{Kind: check.KindUnexpected, Path: path, Err: fmt.Errorf("failed to read file: %w", err)}
	}
	return content, nil
}
