// Package notify manages transient, auto-expiring user-facing messages.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 5 * time.Second

// Severity classifies a notification
type Severity string

const (
	// SeveritySuccess marks a completed operation
	SeveritySuccess Severity = "success"
	// SeverityError marks a failed operation or rejected input
	SeverityError Severity = "error"
	// SeverityInfo marks a neutral message
	SeverityInfo Severity = "info"
)

// Notification is a single user-facing message
type Notification struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Listener is called with a snapshot of the active notifications after every change.
// It runs on the goroutine that made the change, including expiry timers.
type Listener func([]Notification)

// Manager holds notifications in insertion order and expires each one after its TTL.
// There is no rate limiting and no deduplication.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	items    []Notification
	timers   map[string]*time.Timer
	listener Listener
	now      func() time.Time
	closed   bool
}

// Option configures a Manager
type Option func(*Manager)

// WithTTL overrides the auto-expiry delay. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithListener registers a change listener
func WithListener(l Listener) Option {
	return func(m *Manager) {
		m.listener = l
	}
}

// NewManager creates a notification manager
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		ttl:    DefaultTTL,
		timers: make(map[string]*time.Timer),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetListener replaces the change listener. Front-ends that are constructed after the
// coordinator use this to attach themselves.
func (m *Manager) SetListener(l Listener) {
	m.mu.Lock()
	m.listener = l
	m.mu.Unlock()
}

// TTL returns the auto-expiry delay
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Push appends a notification, schedules its removal and returns its id.
func (m *Manager) Push(severity Severity, text string) string {
	n := Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Text:      text,
		CreatedAt: m.now(),
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return n.ID
	}
	m.items = append(m.items, n)
	id := n.ID
	m.timers[id] = time.AfterFunc(m.ttl, func() { m.expire(id) })
	snapshot, listener := m.snapshotLocked()
	m.mu.Unlock()

	notifyListener(listener, snapshot)
	return id
}

// Success is shorthand for Push(SeveritySuccess, text)
func (m *Manager) Success(text string) string {
	return m.Push(SeveritySuccess, text)
}

// Error is shorthand for Push(SeverityError, text)
func (m *Manager) Error(text string) string {
	return m.Push(SeverityError, text)
}

// Info is shorthand for Push(SeverityInfo, text)
func (m *Manager) Info(text string) string {
	return m.Push(SeverityInfo, text)
}

// Dismiss removes a notification before it expires. Other notifications are unaffected.
// It returns false when the id is unknown or already gone.
func (m *Manager) Dismiss(id string) bool {
	m.mu.Lock()
	removed := m.removeLocked(id)
	if !removed {
		m.mu.Unlock()
		return false
	}
	snapshot, listener := m.snapshotLocked()
	m.mu.Unlock()

	notifyListener(listener, snapshot)
	return true
}

// List returns the active notifications in insertion order
func (m *Manager) List() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot, _ := m.snapshotLocked()
	return snapshot
}

// Get returns a notification by id
func (m *Manager) Get(id string) (Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.items {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// Len returns the number of active notifications
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops all pending expiry timers and drops every notification.
// Pushes after Close are ignored.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, timer := range m.timers {
		timer.Stop()
		delete(m.timers, id)
	}
	m.items = nil
	m.closed = true
}

func (m *Manager) expire(id string) {
	m.mu.Lock()
	if !m.removeLocked(id) {
		m.mu.Unlock()
		return
	}
	snapshot, listener := m.snapshotLocked()
	m.mu.Unlock()

	notifyListener(listener, snapshot)
}

// removeLocked deletes the notification and its timer. Callers hold m.mu.
func (m *Manager) removeLocked(id string) bool {
	if timer, ok := m.timers[id]; ok {
		timer.Stop()
		delete(m.timers, id)
	}
	for i, n := range m.items {
		if n.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Manager) snapshotLocked() ([]Notification, Listener) {
	snapshot := make([]Notification, len(m.items))
	copy(snapshot, m.items)
	return snapshot, m.listener
}

func notifyListener(l Listener, snapshot []Notification) {
	if l != nil {
		l(snapshot)
	}
}
