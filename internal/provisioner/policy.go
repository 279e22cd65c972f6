package provisioner

import "github.com/arencloud/hestia/internal/s3"

// DefaultOwnership is applied to every tenant bucket. Bucket owner
// preferred keeps uploaded objects readable by the tenant regardless of
// which key wrote them.
const DefaultOwnership = s3.OwnershipBucketOwnerPreferred

// PublicAccessDisabled turns off all four public-access blocks. Access
// control is left to bucket policies and ACLs.
func PublicAccessDisabled() s3.PublicAccessBlock {
	return s3.PublicAccessBlock{
		BlockPublicACLs:       false,
		IgnorePublicACLs:      false,
		BlockPublicPolicy:     false,
		RestrictPublicBuckets: false,
	}
}

// DefaultCORS returns the cross-origin rules applied to every tenant
// bucket. Browser clients upload and manage objects directly, so the four
// verbs are open to any origin with any header.
func DefaultCORS() []s3.CORSRule {
	return []s3.CORSRule{{
		AllowedMethods: []string{"POST", "GET", "PUT", "DELETE"},
		AllowedHeaders: []string{"*"},
		AllowedOrigins: []string{"*"},
		MaxAgeSeconds:  3000,
	}}
}
