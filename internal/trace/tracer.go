package trace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/comalice/nfa"
	"github.com/comalice/nfa/internal/log"
)

// Tracer numbers the transitions of one run, logs them and forwards them to
// an optional publisher.
type Tracer[S, E comparable] struct {
	ctx       context.Context
	runID     uuid.UUID
	logger    *slog.Logger
	publisher Publisher

	mu  sync.Mutex
	seq int
}

// NewTracer creates a tracer with a fresh run ID. logger and publisher may be
// nil.
func NewTracer[S, E comparable](ctx context.Context, logger *slog.Logger, publisher Publisher) *Tracer[S, E] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	runID := uuid.New()
	return &Tracer[S, E]{
		ctx:       ctx,
		runID:     runID,
		logger:    logger.With(log.RunID(runID)),
		publisher: publisher,
	}
}

// RunID identifies the run.
func (t *Tracer[S, E]) RunID() uuid.UUID {
	return t.runID
}

// Steps returns how many transitions have been observed.
func (t *Tracer[S, E]) Steps() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}

// Listener returns an nfa.Listener that records into the tracer.
func (t *Tracer[S, E]) Listener() nfa.Listener[S, E] {
	return t.observe
}

func (t *Tracer[S, E]) observe(tr nfa.Transition[S, E]) {
	t.mu.Lock()
	t.seq++
	step := Step{
		RunID: t.runID,
		Seq:   t.seq,
		From:  fmt.Sprint(tr.From),
		Event: fmt.Sprint(tr.Event),
		To:    fmt.Sprint(tr.To),
	}
	t.mu.Unlock()

	t.logger.Info("Transition taken",
		slog.Int("seq", step.Seq),
		slog.String("from", step.From),
		log.Event(tr.Event),
		slog.String("to", step.To),
	)

	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(t.ctx, step); err != nil {
		t.logger.Warn("Failed to publish step",
			slog.Int("seq", step.Seq),
			log.Error(err))
	}
}
