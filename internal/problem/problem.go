package problem

import (
	"errors"
	"fmt"

	"github.com/fyrsmithlabs/pland/internal/solver"
)

var (
	// ErrNoOperators indicates a problem whose ops list is missing or empty.
	ErrNoOperators = errors.New("problem has no operators")

	// ErrNoGoals indicates a problem whose finish list is missing or empty.
	ErrNoGoals = errors.New("problem has no goal facts")
)

// Problem is a complete planning problem definition.
type Problem struct {
	// Start is the ordered list of initially true facts.
	Start []string `json:"start" koanf:"start"`

	// Finish is the ordered list of goal facts.
	Finish []string `json:"finish" koanf:"finish"`

	// Ops is the ordered operator list. Order matters: the solver tries
	// candidates first to last.
	Ops []OperatorDef `json:"ops" koanf:"ops"`
}

// OperatorDef describes one operator in a problem file.
type OperatorDef struct {
	Action   string   `json:"action" koanf:"action"`
	Preconds []string `json:"preconds" koanf:"preconds"`
	Add      []string `json:"add" koanf:"add"`
	Delete   []string `json:"delete" koanf:"delete"`
}

// Validate checks the problem for structural errors. Duplicate action names
// and duplicate facts inside lists are allowed; the solver tolerates both.
func (p *Problem) Validate() error {
	if len(p.Ops) == 0 {
		return ErrNoOperators
	}
	if len(p.Finish) == 0 {
		return ErrNoGoals
	}

	for i, op := range p.Ops {
		if op.Action == "" {
			return fmt.Errorf("ops[%d]: missing action", i)
		}
		if err := validateFacts(op.Preconds, fmt.Sprintf("ops[%d] (%s) preconds", i, op.Action)); err != nil {
			return err
		}
		if err := validateFacts(op.Add, fmt.Sprintf("ops[%d] (%s) add", i, op.Action)); err != nil {
			return err
		}
		if err := validateFacts(op.Delete, fmt.Sprintf("ops[%d] (%s) delete", i, op.Action)); err != nil {
			return err
		}
	}

	if err := validateFacts(p.Start, "start"); err != nil {
		return err
	}
	return validateFacts(p.Finish, "finish")
}

func validateFacts(facts []string, where string) error {
	for i, f := range facts {
		if f == "" {
			return fmt.Errorf("%s[%d]: empty fact label", where, i)
		}
	}
	return nil
}

// InitialFacts converts the start list to solver facts.
func (p *Problem) InitialFacts() []solver.Fact {
	return toFacts(p.Start)
}

// GoalFacts converts the finish list to solver facts.
func (p *Problem) GoalFacts() []solver.Fact {
	return toFacts(p.Finish)
}

// Operators converts the ops list to solver operators, preserving order.
func (p *Problem) Operators() []solver.Operator {
	ops := make([]solver.Operator, len(p.Ops))
	for i, def := range p.Ops {
		ops[i] = solver.Operator{
			Action:   def.Action,
			Preconds: toFacts(def.Preconds),
			Add:      toFacts(def.Add),
			Delete:   toFacts(def.Delete),
		}
	}
	return ops
}

func toFacts(labels []string) []solver.Fact {
	facts := make([]solver.Fact, len(labels))
	for i, l := range labels {
		facts[i] = solver.Fact(l)
	}
	return facts
}
