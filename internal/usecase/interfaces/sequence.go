package interfaces

import (
	"context"
	"fmt"
)

// SequenceReservation is a compare-and-swap over a persisted counter.
// The repository committing the numbered record must move the counter at Key
// from Previous to Value in the same transaction, creating it when Exists is
// false, and fail with ErrSequenceConflict if the counter moved meanwhile.
type SequenceReservation struct {
	Key      string
	Previous int64
	Exists   bool
	Value    int64
}

// GuardKey identifies the uniqueness marker of the reserved value.
func (r SequenceReservation) GuardKey() string {
	return fmt.Sprintf("%s#%d", r.Key, r.Value)
}

type ICounterStore interface {
	// Current returns the counter value and whether the counter exists.
	Current(ctx context.Context, key string) (int64, bool, error)
}
