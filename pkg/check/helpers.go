package check

import (
	"errors"
	"fmt"
)

// Found sets the result to found status with a message.
func (r *Result) Found(msg string) Result {
	r.Status = StatusFound
	r.Message = msg
	r.Err = nil
	return *r
}

// Foundf sets the result to found status with a formatted message.
func (r *Result) Foundf(format string, args ...any) Result {
	return r.Found(fmt.Sprintf(format, args...))
}

// NotFound sets the result to not-found status. The error is a
// MissingAttribute *Error for path.
func (r *Result) NotFound(msg, path string) Result {
	r.Status = StatusNotFound
	r.Message = msg
	r.Err = &Error{Kind: KindMissingAttribute, Path: path, Err: errors.New(msg)}
	return *r
}

// Fail sets the result to error status with a message.
func (r *Result) Fail(msg string, err error) Result {
	r.Status = StatusError
	r.Message = msg
	r.Err = err
	return *r
}

// Failf sets the result to error status with a formatted message, wrapping
// it in an *Error of the given kind.
func (r *Result) Failf(kind Kind, path, format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	return r.Fail(msg, &Error{Kind: kind, Path: path, Err: errors.New(msg)})
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
