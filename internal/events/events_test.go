package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	event := New(BucketCreating, "acme", "tenant-acme")

	_, err := uuid.Parse(event.ID)
	require.NoError(t, err, "event ID should be a uuid")
	assert.Equal(t, BucketCreating, event.Type)
	assert.Equal(t, "acme", event.TenantKey)
	assert.Equal(t, "tenant-acme", event.Bucket)
	assert.False(t, event.Time.IsZero())
}

func TestNew_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := New(BucketCreated, "acme", "tenant-acme")
	b := New(BucketCreated, "acme", "tenant-acme")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTypeValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  Type
		want string
	}{
		{BucketCreating, "tenant.bucket.creating"},
		{BucketCreated, "tenant.bucket.created"},
		{BucketDeleting, "tenant.bucket.deleting"},
		{BucketDeleted, "tenant.bucket.deleted"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, string(tt.typ))
	}
}
