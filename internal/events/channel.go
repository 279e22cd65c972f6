package events

import (
	"context"
	"fmt"
	"sync"
)

// ChannelPublisher delivers events to an in-process channel for consumers
// wired in the same binary. The buffer absorbs bursts; a full buffer fails
// the publish instead of blocking the caller.
type ChannelPublisher struct {
	ch     chan Event
	mu     sync.Mutex
	closed bool
}

func NewChannelPublisher(buffer int) *ChannelPublisher {
	if buffer <= 0 {
		buffer = 64
	}
	return &ChannelPublisher{ch: make(chan Event, buffer)}
}

func (p *ChannelPublisher) Name() string { return "channel" }

// Events returns the receive side of the publisher.
func (p *ChannelPublisher) Events() <-chan Event { return p.ch }

func (p *ChannelPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("channel publisher closed")
	}
	select {
	case p.ch <- event:
		return nil
	default:
		return fmt.Errorf("channel publisher buffer full")
	}
}

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
