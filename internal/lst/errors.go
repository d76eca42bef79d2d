package lst

import "errors"

// ErrZoneLocked is returned when a locked zone is asked to change its
// position.
var ErrZoneLocked = errors.New("zone is locked")

// ErrRedundant is returned when a call would have no effect, e.g. locking a
// locked zone.
var ErrRedundant = errors.New("redundant call")

// An InvalidInputError reports input that could not be understood, such as an
// unparseable instant.
type InvalidInputError struct {
	Input string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return "invalid input '" + e.Input + "': " + e.Err.Error()
}

func (e *InvalidInputError) Unwrap() error { return e.Err }
