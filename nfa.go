package nfa

import (
	"iter"
	"log/slog"
	"slices"
)

// Transition is one recorded (from, event, to) rule.
type Transition[S, E comparable] struct {
	From  S
	Event E
	To    S
}

// IsLoop reports whether the transition leads back to its source state.
func (t Transition[S, E]) IsLoop() bool {
	return t.From == t.To
}

// Acceptor is implemented by event types that want to observe the
// transitions taken with them.
type Acceptor[S any] interface {
	Accept(from, to S)
}

// Listener observes every transition taken by any cursor of an NFA.
type Listener[S, E comparable] func(t Transition[S, E])

type key[S, E comparable] struct {
	from  S
	event E
}

// NFA is an immutable transition table. Use a Builder to create one.
type NFA[S, E comparable] struct {
	transitions []Transition[S, E]
	byKey       map[key[S, E]][]Transition[S, E]
	byFrom      map[S][]Transition[S, E]
	byTo        map[S][]Transition[S, E]
	states      []S
	events      []E
	listeners   []Listener[S, E]
	logger      *slog.Logger
}

//
// Public API
//

// GetTransitions returns every transition recorded for (from, event) in
// insertion order. The result is empty when nothing matches.
func (n *NFA[S, E]) GetTransitions(from S, event E) []Transition[S, E] {
	return slices.Clone(n.byKey[key[S, E]{from: from, event: event}])
}

// TransitionsFrom returns all transitions leaving the given state.
func (n *NFA[S, E]) TransitionsFrom(from S) []Transition[S, E] {
	return slices.Clone(n.byFrom[from])
}

// TransitionsTo returns all transitions entering the given state.
func (n *NFA[S, E]) TransitionsTo(to S) []Transition[S, E] {
	return slices.Clone(n.byTo[to])
}

// Transitions yields every transition of the table in insertion order.
func (n *NFA[S, E]) Transitions() iter.Seq[Transition[S, E]] {
	return func(yield func(Transition[S, E]) bool) {
		for _, t := range n.transitions {
			if !yield(t) {
				return
			}
		}
	}
}

// States returns every known state in order of first appearance.
func (n *NFA[S, E]) States() []S {
	return slices.Clone(n.states)
}

// Events returns every event used by a transition in order of first appearance.
func (n *NFA[S, E]) Events() []E {
	return slices.Clone(n.events)
}

// Len returns the number of distinct transitions.
func (n *NFA[S, E]) Len() int {
	return len(n.transitions)
}

// IsDeterministic reports whether every (state, event) pair leads to at most
// one state.
func (n *NFA[S, E]) IsDeterministic() bool {
	for _, ts := range n.byKey {
		if len(ts) > 1 {
			return false
		}
	}
	return true
}

// Start returns a cursor whose active set holds the given states.
func (n *NFA[S, E]) Start(initial ...S) Cursor[S, E] {
	states := make([]S, 0, len(initial))
	seen := make(map[S]struct{}, len(initial))
	for _, s := range initial {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		states = append(states, s)
	}
	return Cursor[S, E]{nfa: n, states: states}
}

// Apply runs events from the initial state and returns the resulting active
// states. It is equivalent to stepping a cursor with AndThen.
func (n *NFA[S, E]) Apply(initial S, events []E) []S {
	return n.Start(initial).AndThenAll(events...).States()
}

// ApplySeq is Apply over a lazily produced event sequence. Events are
// consumed when the returned sequence is first iterated; the result is
// computed once.
func (n *NFA[S, E]) ApplySeq(initial S, events iter.Seq[E]) iter.Seq[S] {
	var (
		done   bool
		result Cursor[S, E]
	)
	return func(yield func(S) bool) {
		if !done {
			c := n.Start(initial)
			for e := range events {
				c = c.AndThen(e)
			}
			result, done = c, true
		}
		for _, s := range result.states {
			if !yield(s) {
				return
			}
		}
	}
}

//
// Helper Functions (internal API)
//

// step computes the successor set of states for event, firing callbacks for
// each transition taken.
func (n *NFA[S, E]) step(states []S, event E) ([]S, int) {
	var (
		next  []S
		seen  = make(map[S]struct{})
		taken int
	)
	acceptor, _ := any(event).(Acceptor[S])
	for _, from := range states {
		for _, t := range n.byKey[key[S, E]{from: from, event: event}] {
			taken++
			n.fire(acceptor, t)
			if _, ok := seen[t.To]; ok {
				continue
			}
			seen[t.To] = struct{}{}
			next = append(next, t.To)
		}
	}
	return next, taken
}

func (n *NFA[S, E]) fire(acceptor Acceptor[S], t Transition[S, E]) {
	if acceptor != nil {
		acceptor.Accept(t.From, t.To)
	}
	for _, l := range n.listeners {
		l(t)
	}
}
