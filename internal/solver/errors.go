package solver

import "errors"

var (
	// ErrUnachievable indicates no operator sequence reaches a goal from the
	// current state. It covers every search failure the same way: no
	// candidate operator, all candidates failing their preconditions, a
	// cycle in the goal stack, or a sibling goal clobbered by a later one.
	ErrUnachievable = errors.New("goal unachievable")

	// ErrDepthExceeded indicates the goal stack grew past the configured
	// bound. It aborts the whole solve rather than backtracking, since the
	// bound exists to cut off pathological operator sets.
	ErrDepthExceeded = errors.New("goal stack depth exceeded")
)
