package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type identifies a tenant bucket lifecycle phase.
type Type string

const (
	BucketCreating Type = "tenant.bucket.creating"
	BucketCreated  Type = "tenant.bucket.created"
	BucketDeleting Type = "tenant.bucket.deleting"
	BucketDeleted  Type = "tenant.bucket.deleted"
)

// Event is one lifecycle notification. Creating/Deleting carry the bucket
// name being acted on; Created/Deleted are emitted whether or not the
// operation succeeded, so consumers treat them as "attempt finished".
type Event struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	TenantKey string    `json:"tenantKey,omitempty"`
	Bucket    string    `json:"bucket,omitempty"`
	Time      time.Time `json:"time"`
}

// New builds an event with a fresh ID and UTC timestamp.
func New(typ Type, tenantKey, bucket string) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      typ,
		TenantKey: tenantKey,
		Bucket:    bucket,
		Time:      time.Now().UTC(),
	}
}

// Publisher delivers events to one destination.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, event Event) error
	Close() error
}
