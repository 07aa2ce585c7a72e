// Package definition describes NFA transition tables as YAML documents.
//
// A Definition names its initial states and lists transitions; each entry may
// carry several targets, which is how non-determinism is written down:
//
//	id: parking-meter
//	initial: [PAYED_0]
//	transitions:
//	  - {from: PAYED_0, event: drop25, to: [PAYED_25]}
//
// Validation only covers the document itself. The resulting NFA accepts
// anything the builder accepts.
package definition

import (
	"errors"
	"fmt"
	"slices"

	"github.com/comalice/nfa"
)

// Definition is the serializable form of an NFA over string states and events.
type Definition struct {
	ID          string          `json:"id" yaml:"id"`
	Version     string          `json:"version,omitempty" yaml:"version,omitempty"`
	Initial     []string        `json:"initial" yaml:"initial"`
	States      []string        `json:"states,omitempty" yaml:"states,omitempty"`
	Transitions []TransitionDef `json:"transitions" yaml:"transitions"`
}

// TransitionDef is one (from, event) entry with one or more targets.
type TransitionDef struct {
	From  string   `json:"from" yaml:"from"`
	Event string   `json:"event" yaml:"event"`
	To    []string `json:"to" yaml:"to"`
}

var (
	ErrMissingID      = errors.New("definition id is required")
	ErrNoInitial      = errors.New("at least one initial state is required")
	ErrNoTransitions  = errors.New("at least one transition is required")
	ErrEmptyField     = errors.New("empty field")
	ErrUnknownInitial = errors.New("initial state is not used by any transition")
)

// Validate checks the definition:
// - Non-empty ID and at least one initial state
// - At least one transition, each with from, event and a non-empty target list
// - Every initial state is declared or used by a transition
func (d *Definition) Validate() error {
	if d.ID == "" {
		return ErrMissingID
	}
	if len(d.Initial) == 0 {
		return ErrNoInitial
	}
	if len(d.Transitions) == 0 {
		return ErrNoTransitions
	}

	known := make(map[string]bool, len(d.States))
	for i, s := range d.States {
		if s == "" {
			return fmt.Errorf("%w: states[%d]", ErrEmptyField, i)
		}
		known[s] = true
	}
	for i, t := range d.Transitions {
		if err := t.validate(); err != nil {
			return fmt.Errorf("transitions[%d]: %w", i, err)
		}
		known[t.From] = true
		for _, to := range t.To {
			known[to] = true
		}
	}
	for _, s := range d.Initial {
		if !known[s] {
			return fmt.Errorf("%w: %q", ErrUnknownInitial, s)
		}
	}
	return nil
}

func (t TransitionDef) validate() error {
	if t.From == "" {
		return fmt.Errorf("%w: from", ErrEmptyField)
	}
	if t.Event == "" {
		return fmt.Errorf("%w: event", ErrEmptyField)
	}
	if len(t.To) == 0 {
		return fmt.Errorf("%w: to", ErrEmptyField)
	}
	for j, to := range t.To {
		if to == "" {
			return fmt.Errorf("%w: to[%d]", ErrEmptyField, j)
		}
	}
	return nil
}

// Build constructs the NFA described by d. d is assumed valid.
func (d *Definition) Build(opts ...nfa.Option[string, string]) *nfa.NFA[string, string] {
	b := nfa.NewBuilder(opts...).AddStates(d.States...)
	for _, t := range d.Transitions {
		for _, to := range t.To {
			b.AddTransition(t.From, t.Event, to)
		}
	}
	return b.Build()
}

// FromNFA describes n as a Definition. Transitions sharing (from, event) are
// merged into one entry, in insertion order.
func FromNFA(id string, initial []string, n *nfa.NFA[string, string]) *Definition {
	d := &Definition{
		ID:      id,
		Initial: slices.Clone(initial),
	}

	used := make(map[string]bool)
	index := make(map[[2]string]int)
	for t := range n.Transitions() {
		used[t.From], used[t.To] = true, true
		k := [2]string{t.From, t.Event}
		if i, ok := index[k]; ok {
			d.Transitions[i].To = append(d.Transitions[i].To, t.To)
			continue
		}
		index[k] = len(d.Transitions)
		d.Transitions = append(d.Transitions, TransitionDef{
			From:  t.From,
			Event: t.Event,
			To:    []string{t.To},
		})
	}
	for _, s := range n.States() {
		if !used[s] {
			d.States = append(d.States, s)
		}
	}
	return d
}
