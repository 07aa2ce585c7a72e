// Package nfa provides a generic nondeterministic finite automaton.
//
// A Builder records (from, event, to) transitions and produces an immutable
// NFA. The NFA can be queried directly with GetTransitions, or driven through
// a Cursor that tracks the full set of active states:
//
//	n := nfa.NewBuilder[PayState, *CoinDrop]().
//	    AddTransition(Payed0, drop25, Payed25).
//	    AddTransition(Payed25, drop25, Payed50).
//	    Build()
//
//	states := n.Start(Payed0).AndThen(drop25).AndThen(drop25).States()
//
// or in bulk:
//
//	states := n.Apply(Payed0, []*CoinDrop{drop25, drop25})
//
// # Callbacks
//
// When the dynamic type of an event implements Acceptor, its Accept method is
// called with (from, to) for every transition taken with that event. Pointer
// event types are a convenient way to attach caller-owned state. Listeners
// registered with WithListener observe every transition of the automaton.
//
// # Concurrency
//
// A built NFA is safe for concurrent reads. Builders and callbacks are not
// synchronized; callbacks run on the goroutine that steps the cursor.
//
// Missing transitions are never errors: stepping a state with no matching
// transition simply removes it from the active set.
package nfa
