package testutil

import "github.com/comalice/nfa"

// Runner drives an NFA through a sequence of events and reports the final
// active states. Implementations reach the same result through different
// parts of the API so one test suite can check that they agree.
type Runner[S, E comparable] interface {
	Name() string
	Run(initial S, events []E) []S
}

// StepwiseRunner steps a cursor one event at a time.
type StepwiseRunner[S, E comparable] struct {
	NFA *nfa.NFA[S, E]
}

func (r StepwiseRunner[S, E]) Name() string { return "stepwise" }

func (r StepwiseRunner[S, E]) Run(initial S, events []E) []S {
	c := r.NFA.Start(initial)
	for _, e := range events {
		c = c.AndThen(e)
	}
	return c.States()
}

// BulkRunner uses NFA.Apply.
type BulkRunner[S, E comparable] struct {
	NFA *nfa.NFA[S, E]
}

func (r BulkRunner[S, E]) Name() string { return "bulk" }

func (r BulkRunner[S, E]) Run(initial S, events []E) []S {
	return r.NFA.Apply(initial, events)
}

// ManualRunner walks the table with GetTransitions only, calling Accept on
// events that implement nfa.Acceptor the way a cursor would.
type ManualRunner[S, E comparable] struct {
	NFA *nfa.NFA[S, E]
}

func (r ManualRunner[S, E]) Name() string { return "manual" }

func (r ManualRunner[S, E]) Run(initial S, events []E) []S {
	current := []S{initial}
	for _, e := range events {
		acceptor, _ := any(e).(nfa.Acceptor[S])
		var next []S
		for _, from := range current {
			for _, t := range r.NFA.GetTransitions(from, e) {
				if acceptor != nil {
					acceptor.Accept(t.From, t.To)
				}
				next = append(next, t.To)
			}
		}
		current = Dedup(next)
	}
	return current
}

// Runners returns every runner for n.
func Runners[S, E comparable](n *nfa.NFA[S, E]) []Runner[S, E] {
	return []Runner[S, E]{
		StepwiseRunner[S, E]{NFA: n},
		BulkRunner[S, E]{NFA: n},
		ManualRunner[S, E]{NFA: n},
	}
}

// Dedup removes repeated states keeping first occurrences.
func Dedup[S comparable](states []S) []S {
	out := make([]S, 0, len(states))
	seen := make(map[S]struct{}, len(states))
	for _, s := range states {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
