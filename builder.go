package nfa

import (
	"log/slog"
	"slices"
)

// Builder accumulates transitions for an NFA. A Builder is not safe for
// concurrent use.
type Builder[S, E comparable] struct {
	transitions []Transition[S, E]
	states      []S
	listeners   []Listener[S, E]
	logger      *slog.Logger
}

// Option configures a Builder.
type Option[S, E comparable] func(*Builder[S, E])

// WithListener registers a listener invoked for every transition taken by
// cursors of the built NFA, after the event's own Accept.
func WithListener[S, E comparable](l Listener[S, E]) Option[S, E] {
	return func(b *Builder[S, E]) {
		if l != nil {
			b.listeners = append(b.listeners, l)
		}
	}
}

// WithLogger makes cursors of the built NFA log every step at debug level.
func WithLogger[S, E comparable](logger *slog.Logger) Option[S, E] {
	return func(b *Builder[S, E]) {
		b.logger = logger
	}
}

// NewBuilder creates an empty builder.
func NewBuilder[S, E comparable](opts ...Option[S, E]) *Builder[S, E] {
	b := &Builder[S, E]{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddTransition records that event moves from to to. Calling it again with the
// same from and event but a different to makes the automaton
// non-deterministic.
func (b *Builder[S, E]) AddTransition(from S, event E, to S) *Builder[S, E] {
	b.transitions = append(b.transitions, Transition[S, E]{From: from, Event: event, To: to})
	return b
}

// AddTransitions records several transitions at once.
func (b *Builder[S, E]) AddTransitions(ts ...Transition[S, E]) *Builder[S, E] {
	b.transitions = append(b.transitions, ts...)
	return b
}

// AddStates declares states that are known to the automaton even when no
// transition touches them.
func (b *Builder[S, E]) AddStates(states ...S) *Builder[S, E] {
	b.states = append(b.states, states...)
	return b
}

// Build snapshots the recorded transitions into an immutable NFA. Identical
// transitions are kept once. The builder stays usable and later changes do
// not affect the returned NFA.
func (b *Builder[S, E]) Build() *NFA[S, E] {
	n := &NFA[S, E]{
		byKey:     make(map[key[S, E]][]Transition[S, E]),
		byFrom:    make(map[S][]Transition[S, E]),
		byTo:      make(map[S][]Transition[S, E]),
		listeners: slices.Clone(b.listeners),
		logger:    b.logger,
	}

	knownStates := make(map[S]struct{})
	addState := func(s S) {
		if _, ok := knownStates[s]; ok {
			return
		}
		knownStates[s] = struct{}{}
		n.states = append(n.states, s)
	}
	knownEvents := make(map[E]struct{})
	seen := make(map[Transition[S, E]]struct{}, len(b.transitions))

	for _, s := range b.states {
		addState(s)
	}
	for _, t := range b.transitions {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}

		k := key[S, E]{from: t.From, event: t.Event}
		n.byKey[k] = append(n.byKey[k], t)
		n.byFrom[t.From] = append(n.byFrom[t.From], t)
		n.byTo[t.To] = append(n.byTo[t.To], t)
		n.transitions = append(n.transitions, t)

		addState(t.From)
		addState(t.To)
		if _, ok := knownEvents[t.Event]; !ok {
			knownEvents[t.Event] = struct{}{}
			n.events = append(n.events, t.Event)
		}
	}
	return n
}
