package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/storage"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

// celebrationWindow is how long the completion banner stays up.
const celebrationWindow = 3 * time.Second

type pomodoroModel struct {
	ctx context.Context
	svc *engine.Service

	timer *engine.Timer
	task  *storage.Task

	// gen tags tick callbacks. Every start/pause/stop/resume bumps it, so a
	// tick scheduled before the transition carries a stale tag and is
	// dropped instead of spawning a second 1 Hz loop.
	gen int

	// coins mirrors the profile balance for rendering. Updated from
	// recordedMsg so View never reads service state the record command is
	// still writing.
	coins int

	width  int
	height int

	bar progress.Model

	celebrateUntil time.Time
	lastCoins      int
	lastLog        string
}

type tickMsg struct {
	gen int
	at  time.Time
}

type recordedMsg struct {
	session *storage.PomodoroSession
	coins   int
}

func newPomodoroModel(ctx context.Context, svc *engine.Service, taskID string) pomodoroModel {
	timer := engine.NewTimer(svc.Settings())
	var task *storage.Task
	if taskID != "" {
		task = svc.TaskByID(taskID)
		if task != nil {
			timer.TaskID = task.ID
		}
	}
	return pomodoroModel{
		ctx:     ctx,
		svc:     svc,
		timer:   timer,
		task:    task,
		coins:   svc.Profile().Coins,
		bar:     progress.New(progress.WithDefaultGradient()),
		lastLog: "Press s to start.",
	}
}

func (m pomodoroModel) Init() tea.Cmd {
	return nil
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}

func (m pomodoroModel) recordCmd(res engine.TickResult) tea.Cmd {
	return func() tea.Msg {
		session := m.svc.RecordPomodoroPhase(m.ctx, engine.PomodoroPhaseRecord{
			TaskID:      m.timer.TaskID,
			Mode:        res.CompletedMode,
			Phase:       res.CompletedPhase,
			Duration:    res.Duration,
			StartedAt:   res.StartedAt,
			CoinsEarned: res.CoinsEarned,
		})
		return recordedMsg{session: session, coins: m.svc.Profile().Coins}
	}
}

func (m pomodoroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 8
		if w > 48 {
			w = 48
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || m.timer.State != engine.StateRunning {
			return m, nil
		}
		res := m.timer.Tick(msg.at)
		if !res.PhaseCompleted {
			return m, tickCmd(m.gen)
		}

		var cmds []tea.Cmd
		cmds = append(cmds, m.recordCmd(res))
		if m.timer.Settings.SoundEnabled {
			cmds = append(cmds, tea.Printf("\a"))
		}
		if m.timer.Settings.AnimationEnabled {
			m.celebrateUntil = time.Now().Add(celebrationWindow)
			m.lastCoins = res.CoinsEarned
		}
		if res.CompletedPhase == engine.PhaseWork {
			m.lastLog = fmt.Sprintf("Work phase done: +%d seeds.", res.CoinsEarned)
		} else {
			m.lastLog = "Break finished."
		}
		if m.timer.State == engine.StateRunning {
			cmds = append(cmds, tickCmd(m.gen))
		}
		return m, tea.Batch(cmds...)

	case recordedMsg:
		m.coins = msg.coins
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s", " ":
			switch m.timer.State {
			case engine.StateIdle:
				m.timer.Start(time.Now())
				m.gen++
				m.lastLog = "Counting down…"
				return m, tickCmd(m.gen)
			case engine.StatePaused:
				m.timer.Resume()
				m.gen++
				m.lastLog = "Resumed."
				return m, tickCmd(m.gen)
			}
			return m, nil
		case "p":
			if m.timer.State == engine.StateRunning && m.timer.Mode() != engine.ModeRelax {
				m.lastLog = "Focus mode can't be paused."
				return m, nil
			}
			m.timer.Pause()
			if m.timer.State == engine.StatePaused {
				m.gen++
				m.lastLog = "Paused."
			}
			return m, nil
		case "x":
			if m.timer.State != engine.StateIdle {
				m.gen++
			}
			m.timer.Stop()
			m.lastLog = "Stopped."
			return m, nil
		case "m":
			if m.timer.State != engine.StateIdle {
				m.lastLog = "Mode can only change while idle."
				return m, nil
			}
			if m.timer.Mode() == engine.ModeFocus {
				m.timer.SetMode(engine.ModeRelax)
			} else {
				m.timer.SetMode(engine.ModeFocus)
			}
			m.svc.UpdatePomodoroSettings(m.ctx, m.timer.Settings)
			m.lastLog = fmt.Sprintf("Mode: %s.", m.timer.Mode())
			return m, nil
		}
	}
	return m, nil
}

func (m pomodoroModel) View() string {
	var b strings.Builder

	b.WriteString(ui.Heading(ui.IconTomato, "Island Pomodoro"))
	b.WriteString("\n\n")

	if !m.celebrateUntil.IsZero() && time.Now().Before(m.celebrateUntil) {
		b.WriteString(ui.Gold.Render(fmt.Sprintf("%s%s Done! +%d seeds!", ui.IconHamster, ui.IconSeed, m.lastCoins)))
		b.WriteString("\n\n")
	}

	phase := "Focus time"
	if m.timer.Phase == engine.PhaseBreak {
		phase = "Break time"
	}
	b.WriteString(ui.H2.Render(phase))
	b.WriteString(ui.Muted.Render(fmt.Sprintf("  (%s mode, %s)", m.timer.Mode(), m.timer.State)))
	b.WriteString("\n\n")

	b.WriteString("  " + formatClock(m.timer.TimeLeft) + "\n\n")

	total := m.phaseTotal()
	pct := 0.0
	if total > 0 {
		pct = 1 - float64(m.timer.TimeLeft)/float64(total)
	}
	b.WriteString("  " + m.bar.ViewAs(pct) + "\n\n")

	if m.task != nil {
		b.WriteString(ui.LabelValue("Task", m.task.Title) + "\n")
	}
	b.WriteString(ui.LabelValue("Seeds", m.coins) + "\n\n")

	b.WriteString(ui.Muted.Render("s: start/resume  p: pause  x: stop  m: mode  q: quit"))
	b.WriteString("\n" + m.lastLog + "\n")
	return b.String()
}

func (m pomodoroModel) phaseTotal() int {
	if m.timer.Phase == engine.PhaseBreak {
		return m.timer.Settings.BreakMinutes * 60
	}
	return m.timer.Settings.FocusMinutes * 60
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
