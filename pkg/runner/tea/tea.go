package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/pantry/pkg/app"
)

// Run launches the Bubble Tea UI. Changes written to the store by another
// process are picked up while it runs.
func Run(ctx context.Context, svc *app.Service) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := svc.Watch(ctx)
	if err != nil {
		return err
	}
	m := New(svc).WithEvents(ctx, events)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
