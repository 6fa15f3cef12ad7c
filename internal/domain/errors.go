package domain

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ForbiddenError represents a mutation the requester does not own.
type ForbiddenError struct {
	Action string
}

func (e ForbiddenError) Error() string {
	if e.Action == "" {
		return "forbidden"
	}
	return fmt.Sprintf("%s forbidden", e.Action)
}

// Is enables errors.Is matching on ForbiddenError.
func (e ForbiddenError) Is(target error) bool {
	_, ok := target.(ForbiddenError)
	if ok {
		return true
	}
	_, ok = target.(*ForbiddenError)
	return ok
}

// ErrForbidden is the sentinel error for unauthorized mutations.
var ErrForbidden = ForbiddenError{}

// MalformedBodyError indicates the request body lacked an expected
// form field or could not be decoded.
type MalformedBodyError struct {
	Field string
}

func (e MalformedBodyError) Error() string {
	if e.Field == "" {
		return "malformed body"
	}
	return fmt.Sprintf("malformed body: missing field %q", e.Field)
}

// Is enables errors.Is matching on MalformedBodyError.
func (e MalformedBodyError) Is(target error) bool {
	_, ok := target.(MalformedBodyError)
	if ok {
		return true
	}
	_, ok = target.(*MalformedBodyError)
	return ok
}

// ErrMalformedBody is the sentinel error for undecodable bodies.
var ErrMalformedBody = MalformedBodyError{}
