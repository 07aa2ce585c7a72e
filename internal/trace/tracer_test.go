package trace_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/nfa"
	"github.com/comalice/nfa/internal/log"
	"github.com/comalice/nfa/internal/trace"
)

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, trace.Step) error {
	return errors.New("sink unavailable")
}

func TestTracerNumbersAndPublishesSteps(t *testing.T) {
	ch := make(chan trace.Step, 8)
	tracer := trace.NewTracer[string, string](context.Background(), nil, trace.NewChannelPublisher(ch))
	require.NotEqual(t, uuid.Nil, tracer.RunID())

	n := nfa.NewBuilder(nfa.WithListener(tracer.Listener())).
		AddTransition("a", "x", "b").
		AddTransition("a", "x", "c").
		AddTransition("b", "y", "a").
		Build()

	assert.Equal(t, []string{"a"}, n.Apply("a", []string{"x", "y"}))
	assert.Equal(t, 3, tracer.Steps())

	want := []trace.Step{
		{RunID: tracer.RunID(), Seq: 1, From: "a", Event: "x", To: "b"},
		{RunID: tracer.RunID(), Seq: 2, From: "a", Event: "x", To: "c"},
		{RunID: tracer.RunID(), Seq: 3, From: "b", Event: "y", To: "a"},
	}
	for _, w := range want {
		assert.Equal(t, w, <-ch)
	}
}

func TestTracerLogsSteps(t *testing.T) {
	var buf bytes.Buffer
	tracer := trace.NewTracer[int, string](context.Background(), log.New(&buf, "text", "info"), nil)

	n := nfa.NewBuilder(nfa.WithListener(tracer.Listener())).
		AddTransition(0, "inc", 1).
		Build()
	n.Apply(0, []string{"inc"})

	out := buf.String()
	assert.Contains(t, out, "Transition taken")
	assert.Contains(t, out, "run_id="+tracer.RunID().String())
	assert.Contains(t, out, "from=0")
	assert.Contains(t, out, "to=1")
}

func TestTracerLogsPublishFailure(t *testing.T) {
	var buf bytes.Buffer
	tracer := trace.NewTracer[string, string](context.Background(), log.New(&buf, "text", "info"), failingPublisher{})

	tracer.Listener()(nfa.Transition[string, string]{From: "a", Event: "x", To: "b"})

	assert.Contains(t, buf.String(), "Failed to publish step")
	assert.Contains(t, buf.String(), "sink unavailable")
	assert.Equal(t, 1, tracer.Steps())
}

func TestTracersHaveDistinctRunIDs(t *testing.T) {
	a := trace.NewTracer[string, string](context.Background(), nil, nil)
	b := trace.NewTracer[string, string](context.Background(), nil, nil)
	assert.NotEqual(t, a.RunID(), b.RunID())
}
