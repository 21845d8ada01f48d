package attrcheck

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/filecheck"
	"github.com/vertti/edatcheck/pkg/xmlscan"
)

const (
	// FileName is the migration attributes file shipped with the package.
	FileName = "EDAT_CustomAttributesEDATMigration.xml"
	// Attribute is the attribute whose value identifies the UPS vendor.
	Attribute = "UPSName"
	// VendorPrefix is the case-insensitive prefix Attribute must start with.
	VendorPrefix = "eaton"
)

// Dir returns the pre-install scripts directory of an EDAT folder.
func Dir(root string) string {
	return filepath.Join(root, "install", "pre_scripts")
}

// Path returns the location of the migration attributes file.
func Path(root string) string {
	return filepath.Join(Dir(root), FileName)
}

// Check verifies that the migration attributes name an Eaton UPS.
type Check struct {
	Root   string               // EDAT installation folder
	FS     filecheck.FileSystem // injected for testing
	Logger zerolog.Logger
}

// Run executes the migration attribute check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "attributes"}
	dir, path := Dir(c.Root), Path(c.Root)
	c.Logger.Debug().Str("path", path).Msg("checking migration attributes")

	if _, err := filecheck.Lookup(c.FS, dir, true); err != nil {
		if check.KindOf(err) == check.KindMissingDirectory {
			return result.Fail(fmt.Sprintf("'pre_scripts' folder not found at: %s", dir), err)
		}
		return result.Fail(fmt.Sprintf("Failed to inspect 'pre_scripts' folder: %v", err), err)
	}

	content, err := filecheck.ReadFile(c.FS, path)
	if err != nil {
		if check.KindOf(err) == check.KindMissingFile {
			return result.Fail(fmt.Sprintf("File '%s' not found at: %s", FileName, path), err)
		}
		return result.Fail(fmt.Sprintf("Unexpected error while checking %s: %v", FileName, err), err)
	}

	el, value, found, err := xmlscan.FindAttr(bytes.NewReader(content), Attribute, func(v string) bool {
		return strings.HasPrefix(strings.ToLower(v), VendorPrefix)
	})
	if err != nil {
		if errors.Is(err, xmlscan.ErrMalformed) {
			result.AddDetail(err.Error())
			return result.Fail(fmt.Sprintf("Failed to parse %s (malformed XML).", FileName),
				&check.Error{Kind: check.KindMalformedXML, Path: path, Err: err})
		}
		return result.Fail(fmt.Sprintf("Unexpected error while checking %s: %v", FileName, err),
			&check.Error{Kind: check.KindUnexpected, Path: path, Err: err})
	}

	if !found {
		return result.NotFound(fmt.Sprintf("No %s attribute starting with 'Eaton' found in %s", Attribute, FileName), path)
	}

	result.AddDetailf("element: %s", el.Name.Local)
	return result.Foundf("%s=\"%s\" found in %s", Attribute, value, FileName)
}
