package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
)

// RunPomodoro opens the interactive pomodoro timer.
func RunPomodoro(ctx context.Context, svc *engine.Service, taskID string, out io.Writer) error {
	m := newPomodoroModel(ctx, svc, taskID)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
