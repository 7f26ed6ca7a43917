package interfaces

import "errors"

var (
	// ErrSequenceConflict is returned by a repository when the reserved
	// sequence number was taken by a concurrent writer. Callers retry the
	// allocation.
	ErrSequenceConflict = errors.New("sequence number already taken")

	// ErrConditionFailed is returned when a conditional write on an existing
	// record was rejected (e.g. the quality check was already recorded).
	ErrConditionFailed = errors.New("condition failed")
)
