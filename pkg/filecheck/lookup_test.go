package filecheck

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/testutil"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		fs       FileSystem
		wantDir  bool
		wantKind check.Kind
	}{
		{"file exists", &testutil.MockFileSystem{StatFunc: testutil.StatFile(10)}, false, ""},
		{"dir exists", &testutil.MockFileSystem{StatFunc: testutil.StatDir()}, true, ""},
		{"file missing", &testutil.MockFileSystem{StatFunc: testutil.StatErr(os.ErrNotExist)}, false, check.KindMissingFile},
		{"dir missing", &testutil.MockFileSystem{StatFunc: testutil.StatErr(os.ErrNotExist)}, true, check.KindMissingDirectory},
		{"expected file got dir", &testutil.MockFileSystem{StatFunc: testutil.StatDir()}, false, check.KindMissingFile},
		{"expected dir got file", &testutil.MockFileSystem{StatFunc: testutil.StatFile(0)}, true, check.KindMissingDirectory},
		{"permission denied", &testutil.MockFileSystem{StatFunc: testutil.StatErr(os.ErrPermission)}, false, check.KindUnexpected},
		{"generic stat error", &testutil.MockFileSystem{StatFunc: testutil.StatErr(errors.New("I/O error"))}, false, check.KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Lookup(tt.fs, "/edat/x", tt.wantDir)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.NotNil(t, info)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, check.KindOf(err))

			var ce *check.Error
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, "/edat/x", ce.Path)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Run("reads content", func(t *testing.T) {
		m := &testutil.MockFileSystem{
			StatFunc:     testutil.StatFile(5),
			ReadFileFunc: func(string) ([]byte, error) { return []byte("hello"), nil },
		}
		content, err := ReadFile(m, "/edat/a.xml")
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("missing file", func(t *testing.T) {
		m := &testutil.MockFileSystem{StatFunc: testutil.StatErr(fs.ErrNotExist)}
		_, err := ReadFile(m, "/edat/a.xml")
		assert.Equal(t, check.KindMissingFile, check.KindOf(err))
	})

	t.Run("read error", func(t *testing.T) {
		m := &testutil.MockFileSystem{
			StatFunc:     testutil.StatFile(5),
			ReadFileFunc: func(string) ([]byte, error) { return nil, errors.New("disk gone") },
		}
		_, err := ReadFile(m, "/edat/a.xml")
		assert.Equal(t, check.KindUnexpected, check.KindOf(err))
		assert.ErrorContains(t, err, "disk gone")
	})
}

func TestIOFS(t *testing.T) {
	mfs := IOFS{FS: fstest.MapFS{
		"edat/config/config.xml": &fstest.MapFile{Data: []byte("<c/>")},
	}}

	_, err := Lookup(mfs, filepath.Join("edat", "config"), true)
	require.NoError(t, err)

	content, err := ReadFile(mfs, filepath.Join("edat", "config", "config.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<c/>", string(content))

	_, err = Lookup(mfs, filepath.Join("edat", "lic"), true)
	assert.Equal(t, check.KindMissingDirectory, check.KindOf(err))
}

func TestRealFileSystem(t *testing.T) {
	rfs := &RealFileSystem{}
	dir := t.TempDir()
	path := filepath.Join(dir, "config.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Config/>"), 0o600))

	info, err := Lookup(rfs, path, false)
	require.NoError(t, err)
	assert.Equal(t, int64(9), info.Size())

	_, err = Lookup(rfs, dir, true)
	require.NoError(t, err)

	content, err := ReadFile(rfs, path)
	require.NoError(t, err)
	assert.Equal(t, "<Config/>", string(content))

	_, err = Lookup(rfs, filepath.Join(dir, "missing.xml"), false)
	assert.Equal(t, check.KindMissingFile, check.KindOf(err))
}
