// Package season resolves which week a recap should cover. State is passed
// in explicitly so resolution stays a pure lookup over already-fetched data.
package season

import "errors"

// ErrNotStarted signals that no week has completed yet. It is an
// informational condition, not a failure.
var ErrNotStarted = errors.New("season has not started yet")

// State is the season position reported by the data source.
type State struct {
	CurrentWeek int
}

// Resolve returns the most recently completed week: the week before the
// current one. Before any week has completed it returns ErrNotStarted.
func Resolve(state State) (int, error) {
	target := state.CurrentWeek - 1
	if target < 1 {
		return 0, ErrNotStarted
	}
	return target, nil
}
