package action

import (
	"context"
	"sync"

	"github.com/certdesk/certdesk/internal/logger"
)

// Runner wraps one UI action's backend call with a loading flag and uniform
// failure feedback. Every failed call produces exactly one error toast;
// successful calls produce none, success feedback is the caller's business.
type Runner struct {
	mu       sync.Mutex
	loading  bool
	errMsg   string
	notifier Notifier
	logger   *logger.Logger
}

// NewRunner constructs a Runner reporting failures through notifier.
func NewRunner(notifier Notifier, log *logger.Logger) *Runner {
	return &Runner{notifier: notifier, logger: log}
}

// Loading reports whether a call started through this runner is still in
// progress.
func (r *Runner) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Err returns the generic error string of the last failed call, empty after
// a success or before any call.
func (r *Runner) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg
}

// Run invokes call exactly once under the runner's loading flag. label names
// the action for the failure toast ("Download certificate", ...).
//
// On success the call's result is returned with ok=true. On failure — an
// error return or a panic inside call — the failure is classified, exactly
// one error toast is shown combining label and the normalized message, a
// generic error string is recorded, and the zero value is returned with
// ok=false. The loading flag is cleared on every exit path.
func Run[T any](ctx context.Context, r *Runner, label string, call func(context.Context) (T, error)) (result T, ok bool) {
	r.begin()

	var failure any
	defer func() {
		if p := recover(); p != nil {
			failure = p
		}
		if failure == nil {
			r.finish("")
			return
		}

		ne := Classify(failure)
		r.logger.Error().
			Str("action", label).
			Str("code", ne.Code).
			Str("message", ne.Message).
			Msg("action failed")
		r.notifier.ShowError(ne.Title, combineLabel(label, ne.Message))
		r.finish("request failed")

		var zero T
		result, ok = zero, false
	}()

	result, err := call(ctx)
	if err != nil {
		failure = err
		return result, false
	}

	return result, true
}

func (r *Runner) begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = true
	r.errMsg = ""
}

func (r *Runner) finish(errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	r.errMsg = errMsg
}

func combineLabel(label, message string) string {
	if label == "" {
		return message
	}
	return label + ": " + message
}
