package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// recordingTracer captures events for ordering assertions.
type recordingTracer struct {
	events []traceEvent
}

type traceEvent struct {
	kind    string
	depth   int
	subject string
}

func (r *recordingTracer) Achieving(depth int, goal Fact) {
	r.events = append(r.events, traceEvent{"achieving", depth, string(goal)})
}

func (r *recordingTracer) Considering(depth int, action string) {
	r.events = append(r.events, traceEvent{"considering", depth, action})
}

func (r *recordingTracer) Applied(depth int, action string) {
	r.events = append(r.events, traceEvent{"applied", depth, action})
}

func (r *recordingTracer) Unachieved(depth int, goal Fact) {
	r.events = append(r.events, traceEvent{"unachieved", depth, string(goal)})
}

func TestTracer_EventOrderAndDepth(t *testing.T) {
	rec := &recordingTracer{}
	s := New(schoolOperators(), WithTracer(rec))

	_, err := s.Solve(context.Background(),
		[]Fact{"son at home", "car needs battery"},
		[]Fact{"son at school"})
	require.NoError(t, err)

	assert.Equal(t, []traceEvent{
		{"achieving", 0, "son at school"},
		{"considering", 0, "drive son to school"},
		{"achieving", 1, "son at home"},
		{"achieving", 1, "car works"},
		{"considering", 1, "shop installs battery"},
		{"achieving", 2, "car needs battery"},
		{"applied", 1, "shop installs battery"},
		{"applied", 0, "drive son to school"},
	}, rec.events)
}

func TestTracer_UnachievedOnFailure(t *testing.T) {
	rec := &recordingTracer{}
	s := New(nil, WithTracer(rec))

	_, err := s.Solve(context.Background(), nil, []Fact{"anything"})
	require.ErrorIs(t, err, ErrUnachievable)

	require.NotEmpty(t, rec.events)
	last := rec.events[len(rec.events)-1]
	assert.Equal(t, "unachieved", last.kind)
	assert.Equal(t, "anything", last.subject)
}

func TestLogTracer_WritesDebugEvents(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	s := New(schoolOperators(), WithTracer(NewLogTracer(zap.New(core))))

	_, err := s.Solve(context.Background(),
		[]Fact{"son at home", "car needs battery"},
		[]Fact{"son at school"})
	require.NoError(t, err)

	considered := observed.FilterMessage("considering").All()
	require.Len(t, considered, 2)
	assert.Equal(t, "drive son to school", considered[0].ContextMap()["action"])

	applied := observed.FilterMessage("applied").All()
	require.Len(t, applied, 2)
	assert.Equal(t, int64(1), applied[0].ContextMap()["depth"])
}

func TestWithTracer_NilKeepsDefault(t *testing.T) {
	s := New(schoolOperators(), WithTracer(nil))

	_, err := s.Solve(context.Background(),
		[]Fact{"son at school"}, []Fact{"son at school"})

	assert.NoError(t, err)
}
