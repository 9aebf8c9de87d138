package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

// opDoneMsg is sent when a coordinator operation completes
type opDoneMsg struct {
	result workflow.Result
}

// notificationsMsg carries the notification list after any change
type notificationsMsg struct {
	items []notify.Notification
}

// statusMsg carries a coordinator status transition
type statusMsg struct {
	status types.OperationStatus
}

// runOp runs fn off the UI loop and reports its result
func runOp(fn func() workflow.Result) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{result: fn()}
	}
}

// waitForNotifications blocks until the notification list changes
func waitForNotifications(ctx context.Context, ch <-chan []notify.Notification) tea.Cmd {
	return func() tea.Msg {
		select {
		case items := <-ch:
			return notificationsMsg{items: items}
		case <-ctx.Done():
			return nil
		}
	}
}

func waitForStatus(ctx context.Context, ch <-chan types.OperationStatus) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-ch:
			return statusMsg{status: s}
		case <-ctx.Done():
			return nil
		}
	}
}
