package models

// ActionResult is the single tagged outcome type both backend surfaces are
// normalized to. The privileged surface's {success,message} and the
// self-service {ok,data,error} shapes are each adapted into one of these, so
// the action layer never branches on surface-specific response fields.
type ActionResult struct {
	// Succeeded reports whether the backend accepted the action.
	Succeeded bool

	// Message is the server-provided human-readable outcome, if any.
	Message string

	// Code is the machine-readable failure code. Empty on success.
	Code string
}

// SuccessResult builds a successful ActionResult with the given message.
func SuccessResult(message string) ActionResult {
	return ActionResult{Succeeded: true, Message: message}
}

// FailureResult builds a failed ActionResult carrying a code/message pair.
func FailureResult(code, message string) ActionResult {
	return ActionResult{Code: code, Message: message}
}
