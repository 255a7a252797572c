// Package solver implements planning by means-ends analysis.
//
// A problem is given as a set of initial facts, a set of goal facts, and a
// collection of operators. Each operator names an action and carries three
// fact lists: preconditions that must hold before it applies, an add list
// of facts that become true, and a delete list of facts that stop holding.
//
// To achieve a goal the solver looks for an appropriate operator (one whose
// add list contains the goal) and recursively achieves that operator's
// preconditions. Candidates are tried in the order the operators were given
// and the first one that applies wins. The search is depth-first and
// order-sensitive: it finds a plan, not the shortest plan, and it can miss
// plans that a complete planner would find.
//
// # Usage
//
//	s := solver.New(ops)
//	plan, err := s.Solve(ctx, start, goals)
//	if errors.Is(err, solver.ErrUnachievable) {
//	    // no operator sequence reaches the goals
//	}
//
// Executed actions are recovered through bookkeeping facts: New appends an
// "Executing <action>" fact to each operator's add list (on a solver-owned
// copy, so caller operators are never modified and repeated solves cannot
// accumulate duplicates). No operator ever deletes a bookkeeping fact, so
// the final state records every applied action in application order.
//
// The engine is purely synchronous and keeps no state between solves. A
// Solver is safe for concurrent use only because Solve never mutates the
// seeded operators; each call owns its own state and goal stack.
package solver
