package nfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/comalice/nfa"
)

type tr = Transition[string, string]

func TestBuilderSnapshotIsolation(t *testing.T) {
	b := NewBuilder[string, string]().AddTransition("a", "x", "b")
	first := b.Build()

	b.AddTransition("a", "x", "c").AddTransition("b", "y", "a")
	second := b.Build()

	assert.Equal(t, []tr{{From: "a", Event: "x", To: "b"}}, first.GetTransitions("a", "x"))
	assert.Empty(t, first.GetTransitions("b", "y"))
	assert.Equal(t, 1, first.Len())

	assert.Len(t, second.GetTransitions("a", "x"), 2)
	assert.Equal(t, 3, second.Len())
}

func TestBuilderDuplicatesCollapse(t *testing.T) {
	n := NewBuilder[string, string]().
		AddTransition("a", "x", "b").
		AddTransition("a", "x", "b").
		AddTransition("a", "x", "c").
		AddTransition("a", "x", "b").
		Build()

	assert.Equal(t, []tr{
		{From: "a", Event: "x", To: "b"},
		{From: "a", Event: "x", To: "c"},
	}, n.GetTransitions("a", "x"))
	assert.Equal(t, 2, n.Len())
}

func TestBuilderAddTransitions(t *testing.T) {
	n := NewBuilder[string, string]().
		AddTransitions(
			tr{From: "a", Event: "x", To: "b"},
			tr{From: "b", Event: "x", To: "a"},
		).
		Build()

	assert.Equal(t, []string{"b"}, n.Apply("a", []string{"x"}))
	assert.Equal(t, []string{"a"}, n.Apply("a", []string{"x", "x"}))
}

func TestBuilderStatesAndEvents(t *testing.T) {
	n := NewBuilder[string, string]().
		AddStates("idle").
		AddTransition("a", "x", "b").
		AddTransition("b", "y", "a").
		AddTransition("b", "x", "c").
		AddStates("a", "z").
		Build()

	assert.Equal(t, []string{"idle", "a", "z", "b", "c"}, n.States())
	assert.Equal(t, []string{"x", "y"}, n.Events())
}

func TestBuilderEmpty(t *testing.T) {
	n := NewBuilder[int, int]().Build()

	assert.Zero(t, n.Len())
	assert.Empty(t, n.States())
	assert.Empty(t, n.GetTransitions(1, 1))
	assert.True(t, n.IsDeterministic())
	assert.Empty(t, n.Apply(1, []int{1}))
	assert.Equal(t, []int{1}, n.Apply(1, nil))
}

func TestBuilderNilListenerIgnored(t *testing.T) {
	n := NewBuilder(WithListener[string, string](nil)).
		AddTransition("a", "x", "b").
		Build()

	assert.Equal(t, []string{"b"}, n.Apply("a", []string{"x"}))
}
