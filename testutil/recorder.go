package testutil

import (
	"sync"

	"github.com/comalice/nfa"
)

// Recorder collects transitions reported to its Listener.
type Recorder[S, E comparable] struct {
	mu          sync.Mutex
	transitions []nfa.Transition[S, E]
}

// Listener returns a listener that appends to the recorder.
func (r *Recorder[S, E]) Listener() nfa.Listener[S, E] {
	return func(t nfa.Transition[S, E]) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.transitions = append(r.transitions, t)
	}
}

// Transitions returns a copy of everything recorded so far.
func (r *Recorder[S, E]) Transitions() []nfa.Transition[S, E] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]nfa.Transition[S, E], len(r.transitions))
	copy(out, r.transitions)
	return out
}

// Count returns how many recorded transitions used event.
func (r *Recorder[S, E]) Count(event E) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.transitions {
		if t.Event == event {
			n++
		}
	}
	return n
}

// Reset drops all recorded transitions.
func (r *Recorder[S, E]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = nil
}
