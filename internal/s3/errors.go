package s3

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ProviderMessage extracts the provider's own error code and message from a
// failed call, unwrapping the SDK's operation wrappers. Falls back to the Go
// error text when the failure never reached the provider.
func ProviderMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.ErrorMessage(); msg != "" {
			return apiErr.ErrorCode() + ": " + msg
		}
		return apiErr.ErrorCode()
	}
	return err.Error()
}
