package check

// Status represents the outcome of a check.
type Status string

const (
	StatusFound    Status = "FOUND"
	StatusNotFound Status = "NOT FOUND"
	StatusError    Status = "ERROR"
)

// Severity drives display styling only.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "config", "license", "attributes"
	Status  Status   // FOUND, NOT FOUND or ERROR
	Message string   // headline shown next to the status tag
	Details []string // human-readable details
	Err     error    // underlying error for anything but FOUND
}

// OK returns true if the check found what it was looking for.
func (r Result) OK() bool {
	return r.Status == StatusFound
}

// Severity returns success for FOUND and error otherwise.
func (r Result) Severity() Severity {
	if r.OK() {
		return SeveritySuccess
	}
	return SeverityError
}
