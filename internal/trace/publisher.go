// Package trace records the transitions taken during one run of an NFA.
package trace

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Step is one transition taken during a run.
type Step struct {
	RunID uuid.UUID
	Seq   int
	From  string
	Event string
	To    string
}

// Publisher receives steps as they happen.
type Publisher interface {
	Publish(ctx context.Context, step Step) error
}

var ErrPublisherClosed = errors.New("publisher closed")

// ChannelPublisher forwards steps to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	mu      sync.Mutex
	ch      chan<- Step
	closed  bool
	dropped int
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- Step) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, step Step) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.ch <- step:
	default:
		p.dropped++
	}
	return nil
}

// Dropped returns how many steps were discarded because the channel was full.
func (p *ChannelPublisher) Dropped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// Close closes the output channel. Further publishes fail.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.ch)
	return nil
}
