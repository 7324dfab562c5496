package objsoup

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceUnavailable is matched by every error returned when a geometry
	// file cannot be opened or read.
	ErrResourceUnavailable = errors.New("geometry resource unavailable")

	// ErrMalformedToken is matched by every error returned for a token that
	// does not parse, a face index outside the position table, or a record
	// cut short by the end of input.
	ErrMalformedToken = errors.New("malformed geometry token")

	ErrIndexOutOfRange = errors.New("face index out of range")
	ErrTruncated       = errors.New("record truncated by end of input")
)

type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("could not read geometry file %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceUnavailable
}

// TokenError describes the token that stopped a scan. Offset is a byte offset
// into the source and Line is 1-based.
type TokenError struct {
	Resource string
	Offset   int
	Line     int
	Token    string
	Err      error
}

func (e *TokenError) Error() string {
	name := e.Resource
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d: bad token %q at byte %d: %v", name, e.Line, e.Token, e.Offset, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

func (e *TokenError) Is(target error) bool {
	return target == ErrMalformedToken
}
