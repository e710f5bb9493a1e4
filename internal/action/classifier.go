// Package action implements the feedback layer between the console UI and
// the certificate backend: error classification, the guarded call runner,
// per-item resend deduplication, and the download state machine.
package action

import (
	"errors"
	"reflect"
	"strings"

	"github.com/certdesk/certdesk/internal/adapter"
)

// Stable codes produced by Classify when the failure carries no structured
// backend code of its own.
const (
	CodeNetworkError = "NETWORK_ERROR"
	CodeUnknown      = "UNKNOWN"
)

// Backend-defined codes the classifier knows friendlier titles for. Any other
// code is passed through with a generic title.
const (
	CodeValidationError = "VALIDATION_ERROR"
	existsCodeSuffix    = "_EXISTS"
)

// NormalizedError is the uniform (code, message) pair every failure is
// reduced to before reaching the user. Title is a display heading derived
// from the code; Code itself is never rewritten.
type NormalizedError struct {
	Code    string
	Title   string
	Message string
}

// Classify reduces an arbitrary failure value to a NormalizedError. It is
// total: any input, including nil and non-error panic values, yields a usable
// result, and Classify itself never panics.
//
// Structured backend failures ([*adapter.APIError]) keep their code and
// message verbatim. Other errors are transport-level failures and map to
// NETWORK_ERROR with the underlying message. Everything else maps to UNKNOWN.
func Classify(failure any) NormalizedError {
	switch f := failure.(type) {
	case error:
		if f == nil || isNilError(f) {
			break
		}
		var apiErr *adapter.APIError
		if errors.As(f, &apiErr) && apiErr != nil {
			return NormalizedError{
				Code:    apiErr.Code,
				Title:   friendlyTitle(apiErr.Code),
				Message: apiErr.Message,
			}
		}
		return NormalizedError{
			Code:    CodeNetworkError,
			Title:   friendlyTitle(CodeNetworkError),
			Message: f.Error(),
		}
	}

	return NormalizedError{
		Code:    CodeUnknown,
		Title:   friendlyTitle(CodeUnknown),
		Message: "An unexpected error occurred",
	}
}

// isNilError reports whether err is a typed nil, whose Error method would
// dereference a nil receiver.
func isNilError(err error) bool {
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func friendlyTitle(code string) string {
	switch {
	case code == CodeValidationError:
		return "Validation failed"
	case code == CodeNetworkError:
		return "Network error"
	case code == CodeUnknown:
		return "Unexpected error"
	case strings.HasSuffix(code, existsCodeSuffix):
		return "Already exists"
	default:
		return "Request failed"
	}
}
