package provisioner

import (
	"errors"

	"github.com/arencloud/hestia/internal/s3"
)

// ErrNoBucket reports a delete request for a tenant with no recorded
// bucket. No provider call is made in that case.
var ErrNoBucket = errors.New("tenant has no bucket")

// Result is the outcome of one bucket operation. BucketName is set as soon
// as the provider confirms the bucket exists, even when a later policy step
// fails, so callers can tell a half-provisioned bucket from no bucket.
type Result struct {
	BucketName string
	Err        error
}

// Failed reports whether the operation failed at any step.
func (r Result) Failed() bool { return r.Err != nil }

// ErrorMessage returns the logged form of the failure: "Error: " followed
// by the provider's message. Empty when the operation succeeded.
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return "Error: " + s3.ProviderMessage(r.Err)
}
