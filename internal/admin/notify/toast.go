// Package notify is the toast queue: transient user-facing messages that
// expire on their own timers or on explicit dismissal.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const DefaultTTL = 4 * time.Second

type Toast struct {
	ID       int64
	Message  string
	Severity Severity
}

// Queue is an append-only ordered list of toasts. Each toast runs an
// independent expiry timer; removing one never disturbs the others.
type Queue struct {
	mu     sync.Mutex
	ttl    time.Duration
	nextID int64
	toasts []Toast
	timers map[int64]*time.Timer
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{
		ttl:    ttl,
		timers: make(map[int64]*time.Timer),
	}
}

// Push appends a toast and schedules its expiry.
func (q *Queue) Push(message string, severity Severity) Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	toast := Toast{ID: q.nextID, Message: message, Severity: severity}
	q.toasts = append(q.toasts, toast)

	id := toast.ID
	q.timers[id] = time.AfterFunc(q.ttl, func() {
		q.Dismiss(id)
	})
	return toast
}

func (q *Queue) Info(message string) Toast    { return q.Push(message, SeverityInfo) }
func (q *Queue) Success(message string) Toast { return q.Push(message, SeveritySuccess) }
func (q *Queue) Warning(message string) Toast { return q.Push(message, SeverityWarning) }
func (q *Queue) Error(message string) Toast   { return q.Push(message, SeverityError) }

// Dismiss removes one toast immediately. Dismissing an already-expired
// toast is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			break
		}
	}
}

// Active returns the current toasts in insertion order.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Stop cancels all outstanding expiry timers; queued toasts stay until
// dismissed.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
}
