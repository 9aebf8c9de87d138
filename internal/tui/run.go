package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/cv-tailor/internal/workflow"
)

// Run attaches to the coordinator's notifications and status and runs the
// full-screen interface until the user quits.
func Run(ctx context.Context, coord *workflow.Coordinator) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	b := newBridge()
	coord.Notifications().SetListener(b.onNotifications)
	coord.SetStatusListener(b.onStatus)
	defer coord.Notifications().SetListener(nil)

	p := tea.NewProgram(newModel(ctx, coord, b), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// expandHome resolves a leading ~ in user-typed paths
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
