package check

// Checker is implemented by all check types.
// Each check inspects one artifact of an EDAT folder
// and returns a Result describing what it found.
//
// Implementations:
//   - configcheck.Check: DECAutoName flag in config/config.xml
//   - licensecheck.Check: per-machine license file under lic/
//   - attrcheck.Check: UPSName attribute in the migration attributes file
type Checker interface {
	Run() Result
}
