package attrcheck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/filecheck"
	"github.com/vertti/edatcheck/pkg/testutil"
)

const attrPath = "edat/install/pre_scripts/EDAT_CustomAttributesEDATMigration.xml"

func withAttributes(content string) filecheck.FileSystem {
	return filecheck.IOFS{FS: fstest.MapFS{attrPath: &fstest.MapFile{Data: []byte(content)}}}
}

func TestCheck_Run(t *testing.T) {
	tests := []struct {
		name        string
		fs          filecheck.FileSystem
		wantStatus  check.Status
		wantMessage string
		wantKind    check.Kind
		wantDetail  string
	}{
		{
			name:        "eaton custom",
			fs:          withAttributes(`<Attributes><Attribute UPSName="EatonCustom"/></Attributes>`),
			wantStatus:  check.StatusFound,
			wantMessage: `UPSName="EatonCustom" found in EDAT_CustomAttributesEDATMigration.xml`,
			wantDetail:  "element: Attribute",
		},
		{
			name:        "lowercase eaton deep in tree",
			fs:          withAttributes(`<A><B><C><D UPSName="eaton-9355"/></C></B></A>`),
			wantStatus:  check.StatusFound,
			wantMessage: `UPSName="eaton-9355"`,
		},
		{
			name:        "vertiv only",
			fs:          withAttributes(`<Attributes><Attribute UPSName="Vertiv"/></Attributes>`),
			wantStatus:  check.StatusNotFound,
			wantMessage: "No UPSName attribute starting with 'Eaton' found",
			wantKind:    check.KindMissingAttribute,
		},
		{
			name:        "no UPSName attribute",
			fs:          withAttributes(`<Attributes><Attribute Name="Eaton"/></Attributes>`),
			wantStatus:  check.StatusNotFound,
			wantMessage: "No UPSName attribute",
			wantKind:    check.KindMissingAttribute,
		},
		{
			name:        "malformed",
			fs:          withAttributes(`<Attributes><Attribute UPSName="Eaton">`),
			wantStatus:  check.StatusError,
			wantMessage: "Failed to parse EDAT_CustomAttributesEDATMigration.xml (malformed XML).",
			wantKind:    check.KindMalformedXML,
		},
		{
			name:        "file missing",
			fs:          filecheck.IOFS{FS: fstest.MapFS{"edat/install/pre_scripts/other.xml": &fstest.MapFile{}}},
			wantStatus:  check.StatusError,
			wantMessage: "File 'EDAT_CustomAttributesEDATMigration.xml' not found at: " + filepath.FromSlash(attrPath),
			wantKind:    check.KindMissingFile,
		},
		{
			name:        "pre_scripts missing",
			fs:          filecheck.IOFS{FS: fstest.MapFS{"edat/install/readme.txt": &fstest.MapFile{}}},
			wantStatus:  check.StatusError,
			wantMessage: "'pre_scripts' folder not found at: " + filepath.Join("edat", "install", "pre_scripts"),
			wantKind:    check.KindMissingDirectory,
		},
		{
			name: "read error",
			fs: &testutil.MockFileSystem{
				StatFunc: func(name string) (os.FileInfo, error) {
					if filepath.Base(name) == FileName {
						return &testutil.MockFileInfo{NameValue: FileName}, nil
					}
					return &testutil.MockFileInfo{NameValue: name, IsDirValue: true}, nil
				},
				ReadFileFunc: func(string) ([]byte, error) { return nil, errors.New("device not ready") },
			},
			wantStatus:  check.StatusError,
			wantMessage: "Unexpected error while checking",
			wantKind:    check.KindUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Check{Root: "edat", FS: tt.fs}
			result := c.Run()

			assert.Equal(t, "attributes", result.Name)
			assert.Equal(t, tt.wantStatus, result.Status, "message: %s", result.Message)
			assert.Contains(t, result.Message, tt.wantMessage)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, check.KindOf(result.Err))
			}
			if tt.wantDetail != "" {
				assert.True(t, testutil.ContainsDetail(result.Details, tt.wantDetail), "details %v should contain %q", result.Details, tt.wantDetail)
			}
		})
	}
}

func TestCheck_RealFileSystem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(root), 0o755))
	require.NoError(t, os.WriteFile(Path(root), []byte(`<Attributes UPSName="EATON 93PM"/>`), 0o600))

	c := &Check{Root: root, FS: &filecheck.RealFileSystem{}}
	assert.Equal(t, check.StatusFound, c.Run().Status)
}
