package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Bus fans events out to the configured publishers. Delivery is best
// effort: a failing publisher is logged and counted, never surfaced to the
// caller, so bucket operations are not coupled to delivery.
type Bus struct {
	publishers []Publisher
	log        *zap.Logger
}

func NewBus(log *zap.Logger, publishers ...Publisher) *Bus {
	return &Bus{publishers: publishers, log: log}
}

// Emit delivers the event to every publisher in order.
func (b *Bus) Emit(ctx context.Context, event Event) {
	emittedTotal.WithLabelValues(string(event.Type)).Inc()
	for _, p := range b.publishers {
		start := time.Now()
		if err := p.Publish(ctx, event); err != nil {
			deliveryErrorsTotal.WithLabelValues(p.Name()).Inc()
			b.log.Warn("event delivery failed",
				zap.String("publisher", p.Name()),
				zap.String("type", string(event.Type)),
				zap.String("tenant", event.TenantKey),
				zap.Error(err))
			continue
		}
		deliveredTotal.WithLabelValues(p.Name()).Inc()
		deliveryDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())
	}
}

// Close closes all publishers and joins their errors.
func (b *Bus) Close() error {
	var errs []error
	for _, p := range b.publishers {
		if err := p.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}
	return errors.Join(errs...)
}
