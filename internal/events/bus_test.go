package events

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	name string

	mu         sync.Mutex
	events     []Event
	publishErr error
	closeErr   error
	closed     bool
}

func (p *recordingPublisher) Name() string { return p.name }

func (p *recordingPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishErr != nil {
		return p.publishErr
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return p.closeErr
}

func (p *recordingPublisher) captured() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}

func TestBusEmit_FanOut(t *testing.T) {
	t.Parallel()

	first := &recordingPublisher{name: "first"}
	second := &recordingPublisher{name: "second"}
	bus := NewBus(zap.NewNop(), first, second)

	event := New(BucketCreated, "acme", "tenant-acme")
	bus.Emit(context.Background(), event)

	require.Len(t, first.captured(), 1)
	require.Len(t, second.captured(), 1)
	assert.Equal(t, event.ID, first.captured()[0].ID)
	assert.Equal(t, event.ID, second.captured()[0].ID)
}

func TestBusEmit_FailingPublisherDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	failing := &recordingPublisher{name: "failing", publishErr: fmt.Errorf("connection refused")}
	working := &recordingPublisher{name: "working"}
	bus := NewBus(zap.NewNop(), failing, working)

	bus.Emit(context.Background(), New(BucketDeleting, "acme", "tenant-acme"))

	assert.Empty(t, failing.captured())
	assert.Len(t, working.captured(), 1)
}

func TestBusEmit_NoPublishers(t *testing.T) {
	t.Parallel()

	bus := NewBus(zap.NewNop())
	bus.Emit(context.Background(), New(BucketCreating, "acme", "tenant-acme"))
}

func TestBusClose(t *testing.T) {
	t.Parallel()

	failing := &recordingPublisher{name: "failing", closeErr: fmt.Errorf("already closed")}
	working := &recordingPublisher{name: "working"}
	bus := NewBus(zap.NewNop(), failing, working)

	err := bus.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing: already closed")
	assert.True(t, failing.closed)
	assert.True(t, working.closed)
}

func TestBusClose_NoErrors(t *testing.T) {
	t.Parallel()

	bus := NewBus(zap.NewNop(), &recordingPublisher{name: "only"})
	assert.NoError(t, bus.Close())
}
