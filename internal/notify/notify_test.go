package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(items []Notification) []string {
	out := make([]string, 0, len(items))
	for _, n := range items {
		out = append(out, n.Text)
	}
	return out
}

func TestPush_InsertionOrder(t *testing.T) {
	m := NewManager()
	defer m.Close()

	first := m.Success("saved")
	second := m.Error("failed")
	third := m.Info("hello")

	items := m.List()
	require.Len(t, items, 3)
	assert.Equal(t, []string{"saved", "failed", "hello"}, texts(items))
	assert.Equal(t, first, items[0].ID)
	assert.Equal(t, second, items[1].ID)
	assert.Equal(t, third, items[2].ID)
	assert.Equal(t, SeverityError, items[1].Severity)
	assert.NotEqual(t, first, second)
}

func TestPush_NoDedup(t *testing.T) {
	m := NewManager()
	defer m.Close()

	m.Info("same")
	m.Info("same")

	assert.Equal(t, 2, m.Len())
}

func TestAutoExpiry(t *testing.T) {
	m := NewManager(WithTTL(30 * time.Millisecond))
	defer m.Close()

	m.Success("short lived")
	assert.Equal(t, 1, m.Len())

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestDismiss_LeavesOthers(t *testing.T) {
	m := NewManager()
	defer m.Close()

	a := m.Info("a")
	b := m.Info("b")
	c := m.Info("c")

	assert.True(t, m.Dismiss(b))
	assert.Equal(t, []string{"a", "c"}, texts(m.List()))

	assert.True(t, m.Dismiss(c))
	assert.True(t, m.Dismiss(a))
	assert.Equal(t, 0, m.Len())

	assert.False(t, m.Dismiss(a), "second dismissal is a no-op")
	assert.False(t, m.Dismiss("unknown"))
}

func TestDismiss_BeforeExpiry(t *testing.T) {
	m := NewManager(WithTTL(40 * time.Millisecond))
	defer m.Close()

	early := m.Info("dismissed early")
	late := m.Info("expires")
	require.True(t, m.Dismiss(early))

	_, ok := m.Get(late)
	assert.True(t, ok)
	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestListener(t *testing.T) {
	var mu sync.Mutex
	var snapshots [][]Notification
	m := NewManager(WithTTL(20*time.Millisecond), WithListener(func(items []Notification) {
		mu.Lock()
		snapshots = append(snapshots, items)
		mu.Unlock()
	}))
	defer m.Close()

	m.Success("one")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(snapshots) == 2
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, snapshots[0], 1)
	assert.Empty(t, snapshots[1])
}

func TestList_IsSnapshot(t *testing.T) {
	m := NewManager()
	defer m.Close()

	m.Info("x")
	items := m.List()
	items[0].Text = "mutated"

	assert.Equal(t, "x", m.List()[0].Text)
}

func TestClose(t *testing.T) {
	m := NewManager()
	m.Info("pending")
	m.Close()

	assert.Equal(t, 0, m.Len())
	m.Info("ignored")
	assert.Equal(t, 0, m.Len())
}

func TestWithTTL_IgnoresNonPositive(t *testing.T) {
	m := NewManager(WithTTL(0))
	assert.Equal(t, DefaultTTL, m.TTL())
}
