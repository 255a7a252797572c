package solver

import "go.uber.org/zap"

// Tracer observes the search as it runs. Depth is the current goal stack
// depth, matching the nesting of the recursion. Implementations must not
// mutate anything; tracing is diagnostic only and never affects the result.
type Tracer interface {
	// Achieving is called when the solver starts working on a goal.
	Achieving(depth int, goal Fact)

	// Considering is called when a candidate operator is about to be tried.
	Considering(depth int, action string)

	// Applied is called after an operator's preconditions were satisfied
	// and its effects were applied.
	Applied(depth int, action string)

	// Unachieved is called when a goal fails at this depth, either because
	// no candidate worked, a cycle was detected, or a sibling goal was
	// clobbered.
	Unachieved(depth int, goal Fact)
}

// nopTracer is the default sink.
type nopTracer struct{}

func (nopTracer) Achieving(int, Fact)     {}
func (nopTracer) Considering(int, string) {}
func (nopTracer) Applied(int, string)     {}
func (nopTracer) Unachieved(int, Fact)    {}

// logTracer writes search events at debug level with the stack depth as a
// structured field.
type logTracer struct {
	log *zap.Logger
}

// NewLogTracer returns a Tracer that logs every search event to l at debug
// level.
func NewLogTracer(l *zap.Logger) Tracer {
	return &logTracer{log: l}
}

func (t *logTracer) Achieving(depth int, goal Fact) {
	t.log.Debug("achieving", zap.Int("depth", depth), zap.String("goal", string(goal)))
}

func (t *logTracer) Considering(depth int, action string) {
	t.log.Debug("considering", zap.Int("depth", depth), zap.String("action", action))
}

func (t *logTracer) Applied(depth int, action string) {
	t.log.Debug("applied", zap.Int("depth", depth), zap.String("action", action))
}

func (t *logTracer) Unachieved(depth int, goal Fact) {
	t.log.Debug("unachieved", zap.Int("depth", depth), zap.String("goal", string(goal)))
}
