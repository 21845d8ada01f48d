package licensecheck

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/filecheck"
	"github.com/vertti/edatcheck/pkg/netcheck"
)

// MACSource yields the address the license file is bound to.
// *netcheck.Resolver and netcheck.Fixed implement it.
type MACSource interface {
	Primary() (netcheck.MACAddress, error)
}

// Dir returns the license directory of an EDAT folder.
func Dir(root string) string {
	return filepath.Join(root, "lic")
}

// FileName returns the license file name expected for mac.
func FileName(mac netcheck.MACAddress) string {
	return fmt.Sprintf("%s_EDT.lic", mac)
}

// Check verifies that the per-machine license file is installed.
type Check struct {
	Root   string               // EDAT installation folder
	MAC    MACSource            // host MAC address lookup
	FS     filecheck.FileSystem // injected for testing
	Logger zerolog.Logger
}

// Run executes the license check. A MAC lookup failure is reported with
// check.KindNetworkLookupFailure.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "license"}

	mac, err := c.MAC.Primary()
	if err != nil {
		c.Logger.Debug().Err(err).Msg("MAC lookup failed")
		result.AddDetail(err.Error())
		return result.Fail("Could not determine MAC address of an Ethernet adapter.",
			&check.Error{Kind: check.KindNetworkLookupFailure, Err: err})
	}
	result.AddDetailf("mac: %s", mac)

	dir := Dir(c.Root)
	name := FileName(mac)
	path := filepath.Join(dir, name)
	c.Logger.Debug().Str("path", path).Msg("checking license file")

	if _, err := filecheck.Lookup(c.FS, dir, true); err != nil {
		if check.KindOf(err) == check.KindMissingDirectory {
			return result.Fail(fmt.Sprintf("'lic' folder not found at: %s", dir), err)
		}
		return result.Fail(fmt.Sprintf("Failed to inspect 'lic' folder: %v", err), err)
	}

	if _, err := filecheck.Lookup(c.FS, path, false); err != nil {
		if check.KindOf(err) == check.KindMissingFile {
			return result.Fail(fmt.Sprintf("License file '%s' not found in 'lic' folder.", name), err)
		}
		return result.Fail(fmt.Sprintf("Failed to inspect license file '%s': %v", name, err), err)
	}

	return result.Foundf("License file '%s' found and valid.", name)
}
