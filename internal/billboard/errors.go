package billboard

import "errors"

// Failure kinds for the two actions. They are logged, never returned from
// Submit or ConfirmDelete.
var (
	ErrSubmissionFailed = errors.New("billboard submission failed")
	ErrDeletionBlocked  = errors.New("billboard deletion blocked")
)
