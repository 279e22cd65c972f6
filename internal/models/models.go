package models

import (
	"time"
)

// Tenant is one isolated customer of the platform. Each tenant owns at most
// one dedicated object-storage bucket; BucketName is written once
// provisioning succeeds and read back on deprovisioning. Empty means no
// bucket has been recorded.
type Tenant struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Key        string    `gorm:"uniqueIndex;not null" json:"key"`
	Name       string    `json:"name"`
	BucketName string    `json:"bucketName"`
	// Optional per-tenant provider credentials used for deprovisioning;
	// empty falls back to the service-wide configuration.
	AccessKey string    `json:"accessKey,omitempty"`
	SecretKey string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasBucket reports whether a bucket name has been recorded for the tenant.
func (t *Tenant) HasBucket() bool { return t.BucketName != "" }
