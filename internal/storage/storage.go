// Package storage defines the key-value blob contract the ledger persists
// through, plus the sqlite-backed and in-memory implementations.
package storage

import "errors"

// Keys for the four persisted documents. The strings match the original
// app's storage layout so existing exports import cleanly.
const (
	KeyMeals     = "fitness-app-meals"
	KeyWorkouts  = "fitness-app-workouts"
	KeyBodyStats = "fitness-app-body-stats"
	KeyUserGoals = "fitness-app-user-goals"
)

// Keys lists the persisted keys in a fixed order.
func Keys() []string {
	return []string{KeyMeals, KeyWorkouts, KeyBodyStats, KeyUserGoals}
}

// ErrPersistence marks adapter write failures so callers can distinguish a
// failed durable write from a validation problem.
var ErrPersistence = errors.New("persistence failure")

// Adapter stores one opaque byte blob per key. Get reports absence through
// its second return, not an error.
type Adapter interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
