package solver

import "strings"

// ExecutingPrefix marks the bookkeeping facts that record applied actions.
// Plan extraction strips it to recover the action name.
const ExecutingPrefix = "Executing "

// Fact is a symbolic proposition. The engine treats it as an opaque label
// compared by equality; it never interprets the text.
type Fact string

// State is the ordered collection of facts currently held true. States are
// derived, never updated in place: every transformation returns a new State
// and leaves the receiver intact, so each recursion layer owns its own copy.
type State []Fact

// Contains reports whether the fact currently holds.
func (s State) Contains(f Fact) bool {
	for _, have := range s {
		if have == f {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every given fact currently holds.
func (s State) ContainsAll(facts []Fact) bool {
	for _, f := range facts {
		if !s.Contains(f) {
			return false
		}
	}
	return true
}

// apply returns a new state with every fact in deletes removed and the add
// list appended, in that order. Duplicates in adds are kept as-is.
func (s State) apply(deletes, adds []Fact) State {
	next := make(State, 0, len(s)+len(adds))
	for _, f := range s {
		if !containsFact(deletes, f) {
			next = append(next, f)
		}
	}
	return append(next, adds...)
}

// Operator is a named action with preconditions, add-effects and
// delete-effects. Operators handed to New are read-only to the engine.
type Operator struct {
	Action   string
	Preconds []Fact
	Add      []Fact
	Delete   []Fact
}

// adds reports whether applying the operator makes the fact true.
func (o *Operator) adds(f Fact) bool {
	return containsFact(o.Add, f)
}

// clone returns a deep copy so seeding never touches the caller's lists.
func (o Operator) clone() Operator {
	return Operator{
		Action:   o.Action,
		Preconds: append([]Fact(nil), o.Preconds...),
		Add:      append([]Fact(nil), o.Add...),
		Delete:   append([]Fact(nil), o.Delete...),
	}
}

// executing returns the bookkeeping fact recording this operator's action.
func (o *Operator) executing() Fact {
	return Fact(ExecutingPrefix + o.Action)
}

// Plan is the ordered list of executed action names.
type Plan []string

// extractPlan filters the final state down to bookkeeping facts, preserving
// their relative order, and strips the prefix.
func extractPlan(final State) Plan {
	plan := Plan{}
	for _, f := range final {
		if action, ok := strings.CutPrefix(string(f), ExecutingPrefix); ok {
			plan = append(plan, action)
		}
	}
	return plan
}

// goalStack is the chain of facts currently being pursued, used only for
// cycle detection. push copies so sibling branches never share backing.
type goalStack []Fact

func (gs goalStack) contains(f Fact) bool {
	return containsFact(gs, f)
}

func (gs goalStack) push(f Fact) goalStack {
	next := make(goalStack, len(gs), len(gs)+1)
	copy(next, gs)
	return append(next, f)
}

func containsFact(facts []Fact, f Fact) bool {
	for _, have := range facts {
		if have == f {
			return true
		}
	}
	return false
}
