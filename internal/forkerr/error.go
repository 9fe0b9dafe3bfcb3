// Package forkerr defines the error taxonomy shared by the github
// gateway and the reconciliation logic.
package forkerr

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a remote object, e.g. a branch or a file,
// does not exist.
// It is an expected condition during reconciliation and drives the
// create-vs-update decision, all other errors are terminal for a run.
var ErrNotFound = errors.New("not found")

// ConflictError reports that a remote change was rejected because it
// conflicts with existing state, e.g. a pull request for the branch
// pair already exists or the file revision id is outdated.
type ConflictError struct {
	// Err is the wrapped original error
	Err error
}

func NewConflictError(originalErr error) *ConflictError {
	return &ConflictError{Err: originalErr}
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Err)
}
