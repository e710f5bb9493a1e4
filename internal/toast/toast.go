// Package toast implements the transient notification queue of the console.
//
// Notifications are kept in FIFO order by emission time and are never merged
// or deduplicated: every Show call produces a visible entry. Each entry
// auto-closes after its lifetime unless paused (the TUI pauses the hovered
// toast) or dismissed manually.
package toast

import (
	"sync"
	"time"

	"github.com/certdesk/certdesk/internal/logger"
)

// Kind selects the visual treatment of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultAutoClose is the notification lifetime used when the presenter is
// constructed without one.
const DefaultAutoClose = 5 * time.Second

// Toast is one queued notification.
type Toast struct {
	ID        int
	Kind      Kind
	Title     string
	Message   string
	AutoClose time.Duration
	ShownAt   time.Time
}

type entry struct {
	toast     Toast
	timer     *time.Timer
	deadline  time.Time
	remaining time.Duration
	paused    bool
}

// Presenter owns the notification queue. All methods are safe for concurrent
// use; the OnChange callback is invoked outside the internal lock with a
// snapshot of the active queue.
type Presenter struct {
	mu        sync.Mutex
	nextID    int
	queue     []*entry
	autoClose time.Duration
	onChange  func([]Toast)
	logger    *logger.Logger
}

// NewPresenter constructs a Presenter with the given default lifetime.
// A non-positive autoClose falls back to [DefaultAutoClose]. onChange may be
// nil.
func NewPresenter(autoClose time.Duration, log *logger.Logger, onChange func([]Toast)) *Presenter {
	if autoClose <= 0 {
		autoClose = DefaultAutoClose
	}

	return &Presenter{
		autoClose: autoClose,
		onChange:  onChange,
		logger:    log,
	}
}

// Show enqueues a notification and returns its ID. The entry auto-closes
// after the presenter's default lifetime.
func (p *Presenter) Show(kind Kind, title, message string) int {
	p.mu.Lock()

	p.nextID++
	id := p.nextID
	e := &entry{
		toast: Toast{
			ID:        id,
			Kind:      kind,
			Title:     title,
			Message:   message,
			AutoClose: p.autoClose,
			ShownAt:   time.Now(),
		},
		deadline: time.Now().Add(p.autoClose),
	}
	e.timer = time.AfterFunc(p.autoClose, func() { p.Dismiss(id) })
	p.queue = append(p.queue, e)

	p.logger.Debug().Str("kind", string(kind)).Str("title", title).Msg("toast shown")
	p.notifyLocked()

	return id
}

// ShowSuccess enqueues a success notification.
func (p *Presenter) ShowSuccess(title, message string) {
	p.Show(KindSuccess, title, message)
}

// ShowError enqueues an error notification.
func (p *Presenter) ShowError(title, message string) {
	p.Show(KindError, title, message)
}

// ShowInfo enqueues an informational notification.
func (p *Presenter) ShowInfo(title, message string) {
	p.Show(KindInfo, title, message)
}

// Dismiss removes the notification with the given ID. Unknown IDs are
// ignored.
func (p *Presenter) Dismiss(id int) {
	p.mu.Lock()

	for i, e := range p.queue {
		if e.toast.ID != id {
			continue
		}
		e.timer.Stop()
		p.queue = append(p.queue[:i], p.queue[i+1:]...)
		p.notifyLocked()
		return
	}

	p.mu.Unlock()
}

// Pause stops the auto-close countdown of the given notification, keeping the
// remaining lifetime for Resume.
func (p *Presenter) Pause(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range p.queue {
		if e.toast.ID != id || e.paused {
			continue
		}
		e.timer.Stop()
		e.remaining = time.Until(e.deadline)
		if e.remaining < 0 {
			e.remaining = 0
		}
		e.paused = true
		return
	}
}

// Resume restarts the auto-close countdown of a paused notification with its
// remaining lifetime.
func (p *Presenter) Resume(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range p.queue {
		if e.toast.ID != id || !e.paused {
			continue
		}
		e.paused = false
		e.deadline = time.Now().Add(e.remaining)
		e.timer = time.AfterFunc(e.remaining, func() { p.Dismiss(e.toast.ID) })
		return
	}
}

// Active returns the queued notifications in FIFO emission order.
func (p *Presenter) Active() []Toast {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshotLocked()
}

// Close stops every pending auto-close timer and empties the queue.
func (p *Presenter) Close() {
	p.mu.Lock()

	for _, e := range p.queue {
		e.timer.Stop()
	}
	p.queue = nil
	p.notifyLocked()
}

func (p *Presenter) snapshotLocked() []Toast {
	active := make([]Toast, len(p.queue))
	for i, e := range p.queue {
		active[i] = e.toast
	}
	return active
}

// notifyLocked releases the lock and invokes onChange with a queue snapshot.
// Callers must hold p.mu and must not touch state after calling it.
func (p *Presenter) notifyLocked() {
	snapshot := p.snapshotLocked()
	p.mu.Unlock()

	if p.onChange != nil {
		p.onChange(snapshot)
	}
}
