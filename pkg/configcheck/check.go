package configcheck

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/filecheck"
	"github.com/vertti/edatcheck/pkg/xmlscan"
)

const (
	// FlagElement is the configuration element inspected by the check.
	FlagElement = "DECAutoName"
	// FlagValue is the value FlagElement must hold.
	FlagValue = "false"
)

// Path returns the location of config.xml inside an EDAT folder.
func Path(root string) string {
	return filepath.Join(root, "config", "config.xml")
}

// Check verifies that config/config.xml disables automatic DEC naming.
type Check struct {
	Root   string               // EDAT installation folder
	FS     filecheck.FileSystem // injected for testing
	Logger zerolog.Logger
}

// Run executes the config flag check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "config"}
	path := Path(c.Root)
	c.Logger.Debug().Str("path", path).Msg("checking config flag")

	content, err := filecheck.ReadFile(c.FS, path)
	if err != nil {
		if check.KindOf(err) == check.KindMissingFile {
			return result.Fail("File 'config.xml' not found at: "+path, err)
		}
		return result.Fail("Failed to read config.xml: "+err.Error(), err)
	}

	el, found, err := xmlscan.FindElement(bytes.NewReader(content), FlagElement, func(text string) bool {
		return strings.ToLower(strings.TrimSpace(text)) == FlagValue
	})
	if err != nil {
		kind := check.KindUnexpected
		if errors.Is(err, xmlscan.ErrMalformed) {
			kind = check.KindMalformedXML
		}
		result.AddDetail(err.Error())
		return result.Fail("Failed to parse config.xml (malformed XML).", &check.Error{Kind: kind, Path: path, Err: err})
	}

	if !found {
		return result.NotFound("Tag <DECAutoName>false</DECAutoName> not found in config.xml", path)
	}

	c.Logger.Debug().Int("depth", el.Depth).Msg("config flag matched")
	return result.Found("<DECAutoName>false</DECAutoName> found in config.xml")
}
