package nfa

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"github.com/comalice/nfa/internal/log"
)

// Cursor is an immutable snapshot of the active states of an NFA. Stepping a
// cursor returns a new cursor; the receiver is never modified, so a cursor can
// be branched or replayed freely.
type Cursor[S, E comparable] struct {
	nfa    *NFA[S, E]
	states []S
	steps  int
}

// AndThen applies event to every active state and returns the cursor holding
// the union of all destinations. Callbacks run once per transition taken, in
// the order the transitions are found.
func (c Cursor[S, E]) AndThen(event E) Cursor[S, E] {
	if c.nfa == nil {
		return Cursor[S, E]{steps: c.steps + 1}
	}
	next, taken := c.nfa.step(c.states, event)
	if l := c.nfa.logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("NFA step",
			log.Event(event),
			log.States("from", c.states),
			log.States("to", next),
			slog.Int("taken", taken),
			slog.Int("step", c.steps+1),
		)
	}
	return Cursor[S, E]{nfa: c.nfa, states: next, steps: c.steps + 1}
}

// AndThenAll applies events in order.
func (c Cursor[S, E]) AndThenAll(events ...E) Cursor[S, E] {
	for _, e := range events {
		c = c.AndThen(e)
	}
	return c
}

// State yields the active states. The sequence can be iterated any number of
// times and always yields the same states.
func (c Cursor[S, E]) State() iter.Seq[S] {
	return slices.Values(c.states)
}

// States returns a copy of the active states in discovery order.
func (c Cursor[S, E]) States() []S {
	return slices.Clone(c.states)
}

// Len returns the number of active states.
func (c Cursor[S, E]) Len() int {
	return len(c.states)
}

// IsEmpty reports whether no state is active.
func (c Cursor[S, E]) IsEmpty() bool {
	return len(c.states) == 0
}

// Contains reports whether s is active.
func (c Cursor[S, E]) Contains(s S) bool {
	return slices.Contains(c.states, s)
}

// Steps returns how many events have been applied since Start.
func (c Cursor[S, E]) Steps() int {
	return c.steps
}
