package check

import (
	"errors"
	"fmt"
)

// Kind classifies why a check did not find what it expected.
type Kind string

const (
	KindMissingFile          Kind = "missing file"
	KindMissingDirectory     Kind = "missing directory"
	KindMalformedXML         Kind = "malformed xml"
	KindMissingAttribute     Kind = "missing attribute"
	KindNetworkLookupFailure Kind = "network lookup failure"
	KindUnexpected           Kind = "unexpected error"
)

// Error is the error carried by non-FOUND results.
type Error struct {
	Kind Kind
	Path string // file or directory involved, empty when not path related
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
