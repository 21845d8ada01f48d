// Package validator runs the EDAT folder checks in order.
//
// A run is config flag, then license file, then migration attributes. When
// the host MAC address cannot be determined the run ends after the license
// result and the attributes check is not run.
package validator

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/vertti/edatcheck/pkg/attrcheck"
	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/configcheck"
	"github.com/vertti/edatcheck/pkg/filecheck"
	"github.com/vertti/edatcheck/pkg/licensecheck"
	"github.com/vertti/edatcheck/pkg/netcheck"
)

// Validator holds the collaborators shared by all checks.
type Validator struct {
	fs     filecheck.FileSystem
	mac    licensecheck.MACSource
	logger zerolog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithFileSystem sets the file system the checks read from.
func WithFileSystem(fs filecheck.FileSystem) Option {
	return func(v *Validator) {
		v.fs = fs
	}
}

// WithMACSource sets where the license MAC address comes from.
func WithMACSource(mac licensecheck.MACSource) Option {
	return func(v *Validator) {
		v.mac = mac
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// New creates a Validator backed by the real file system and the host's
// network interfaces unless overridden.
func New(opts ...Option) *Validator {
	v := &Validator{
		fs:     &filecheck.RealFileSystem{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.mac == nil {
		v.mac = &netcheck.Resolver{Lister: netcheck.RealInterfaceLister{}, Logger: v.logger}
	}
	return v
}

// ConfigCheck returns the config flag check for root.
func (v *Validator) ConfigCheck(root string) *configcheck.Check {
	return &configcheck.Check{Root: root, FS: v.fs, Logger: v.logger}
}

// LicenseCheck returns the license file check for root.
func (v *Validator) LicenseCheck(root string) *licensecheck.Check {
	return &licensecheck.Check{Root: root, MAC: v.mac, FS: v.fs, Logger: v.logger}
}

// AttributesCheck returns the migration attribute check for root.
func (v *Validator) AttributesCheck(root string) *attrcheck.Check {
	return &attrcheck.Check{Root: root, FS: v.fs, Logger: v.logger}
}

// Validate runs all checks against root and returns one result per check
// that ran, in order.
func (v *Validator) Validate(root string) []check.Result {
	if strings.TrimSpace(root) == "" {
		r := check.Result{Name: "folder"}
		return []check.Result{r.Failf(check.KindMissingDirectory, "", "No folder selected. Please provide the EDAT folder to validate.")}
	}

	log := v.logger.With().Str("root", root).Logger()
	log.Debug().Msg("validation started")

	results := []check.Result{v.ConfigCheck(root).Run()}

	lic := v.LicenseCheck(root).Run()
	results = append(results, lic)
	if check.KindOf(lic.Err) == check.KindNetworkLookupFailure {
		log.Debug().Msg("stopping after MAC lookup failure")
		return results
	}

	results = append(results, v.AttributesCheck(root).Run())

	found, total := Summary(results)
	log.Debug().Int("found", found).Int("total", total).Msg("validation finished")
	return results
}

// Summary returns how many results are FOUND out of the total.
func Summary(results []check.Result) (found, total int) {
	return lo.CountBy(results, check.Result.OK), len(results)
}

// AllFound reports whether every result is FOUND. An empty slice is not.
func AllFound(results []check.Result) bool {
	return len(results) > 0 && lo.EveryBy(results, check.Result.OK)
}
