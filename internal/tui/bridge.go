package tui

import (
	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/types"
)

// bridge forwards coordinator callbacks into the bubbletea loop.
// Each channel holds only the latest value; listeners never block.
type bridge struct {
	notifications chan []notify.Notification
	status        chan types.OperationStatus
}

func newBridge() *bridge {
	return &bridge{
		notifications: make(chan []notify.Notification, 1),
		status:        make(chan types.OperationStatus, 8),
	}
}

func (b *bridge) onNotifications(items []notify.Notification) {
	for {
		select {
		case b.notifications <- items:
			return
		default:
		}
		select {
		case <-b.notifications:
		default:
		}
	}
}

func (b *bridge) onStatus(s types.OperationStatus) {
	select {
	case b.status <- s:
	default:
		// the loop re-reads the session status on every render
	}
}
