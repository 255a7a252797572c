package solver

import (
	"context"
	"errors"
	"fmt"
)

// Solver runs means-ends analysis over a fixed operator collection.
type Solver struct {
	ops      []Operator
	tracer   Tracer
	maxDepth int
}

// Option configures a Solver.
type Option func(*Solver)

// WithTracer installs a diagnostic sink for search events.
func WithTracer(t Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithMaxDepth bounds the goal stack. Zero or negative means unbounded.
// Cycle detection already guarantees termination for acyclic searches; the
// bound is a defensive cut-off for operator sets with very long
// precondition chains.
func WithMaxDepth(n int) Option {
	return func(s *Solver) {
		s.maxDepth = n
	}
}

// New builds a Solver over ops. The operators are deep-copied and each
// copy's add list is seeded with its "Executing <action>" bookkeeping fact.
// The caller's operators are never modified, so constructing any number of
// solvers from the same definitions, or calling Solve repeatedly, cannot
// accumulate duplicate bookkeeping facts.
func New(ops []Operator, opts ...Option) *Solver {
	seeded := make([]Operator, len(ops))
	for i, op := range ops {
		seeded[i] = op.clone()
		seeded[i].Add = append(seeded[i].Add, seeded[i].executing())
	}

	s := &Solver{
		ops:    seeded,
		tracer: nopTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve searches for an ordered sequence of actions that transforms the
// start facts into a state where every goal fact holds. It returns the plan
// in execution order, empty when the goals already hold. On failure it
// returns an error satisfying errors.Is(err, ErrUnachievable); no partial
// plan is ever returned.
//
// The context is checked once per goal, so a cancelled or deadline-expired
// context aborts the search between steps.
func (s *Solver) Solve(ctx context.Context, start, goals []Fact) (Plan, error) {
	state := make(State, len(start))
	copy(state, start)

	final, err := s.achieveAll(ctx, state, goals, nil)
	if err != nil {
		return nil, err
	}
	return extractPlan(final), nil
}

// achieveAll achieves each goal in order, threading the state through, then
// re-checks that every goal still holds. The second pass catches the
// prerequisite-clobbers-sibling-goal case: achieving a later goal may have
// deleted an earlier one, and each step reporting success is not enough.
func (s *Solver) achieveAll(ctx context.Context, state State, goals []Fact, stack goalStack) (State, error) {
	for _, goal := range goals {
		next, err := s.achieve(ctx, state, goal, stack)
		if err != nil {
			return nil, err
		}
		state = next
	}

	for _, goal := range goals {
		if !state.Contains(goal) {
			s.tracer.Unachieved(len(stack), goal)
			return nil, fmt.Errorf("goal %q undone while achieving its siblings: %w", goal, ErrUnachievable)
		}
	}
	return state, nil
}

// achieve satisfies a single goal: trivially if it already holds, otherwise
// through the first appropriate operator that turns out to be applicable.
// Candidates are tried in operator order and the first success wins.
func (s *Solver) achieve(ctx context.Context, state State, goal Fact, stack goalStack) (State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	depth := len(stack)
	s.tracer.Achieving(depth, goal)

	if state.Contains(goal) {
		return state, nil
	}

	// The same goal higher up the stack means we are already in the middle
	// of achieving it; recursing further would never terminate.
	if stack.contains(goal) {
		s.tracer.Unachieved(depth, goal)
		return nil, fmt.Errorf("goal %q depends on itself: %w", goal, ErrUnachievable)
	}

	if s.maxDepth > 0 && depth >= s.maxDepth {
		return nil, fmt.Errorf("%w: %d goals deep pursuing %q", ErrDepthExceeded, depth, goal)
	}

	for i := range s.ops {
		op := &s.ops[i]
		if !op.adds(goal) {
			continue
		}
		result, err := s.applyOperator(ctx, op, state, goal, stack)
		if err == nil {
			return result, nil
		}
		// Search failures just mean this candidate is not applicable from
		// here; anything else (cancellation, depth bound) aborts the solve.
		if !errors.Is(err, ErrUnachievable) {
			return nil, err
		}
	}

	s.tracer.Unachieved(depth, goal)
	return nil, fmt.Errorf("no applicable operator achieves %q: %w", goal, ErrUnachievable)
}

// applyOperator attempts one candidate: it pushes the goal onto the stack,
// recursively achieves the operator's preconditions, and on success returns
// the state with the delete list removed and the add list appended.
func (s *Solver) applyOperator(ctx context.Context, op *Operator, state State, goal Fact, stack goalStack) (State, error) {
	depth := len(stack)
	s.tracer.Considering(depth, op.Action)

	result, err := s.achieveAll(ctx, state, op.Preconds, stack.push(goal))
	if err != nil {
		return nil, err
	}

	s.tracer.Applied(depth, op.Action)
	return result.apply(op.Delete, op.Add), nil
}
