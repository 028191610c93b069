package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

func newTestModel(t *testing.T) pomodoroModel {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return newPomodoroModel(ctx, engine.NewService(ctx, db, "Testy"), "")
}

func press(t *testing.T, m pomodoroModel, key string) (pomodoroModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(pomodoroModel), cmd
}

func tick(t *testing.T, m pomodoroModel, gen int) (pomodoroModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tickMsg{gen: gen, at: time.Now()})
	return next.(pomodoroModel), cmd
}

func TestTickAdvancesCountdown(t *testing.T) {
	m := newTestModel(t)
	full := m.timer.TimeLeft

	m, cmd := press(t, m, "s")
	if cmd == nil {
		t.Fatal("start scheduled no tick")
	}
	m, cmd = tick(t, m, m.gen)
	if cmd == nil {
		t.Fatal("running tick did not reschedule")
	}
	if m.timer.TimeLeft != full-1 {
		t.Fatalf("time left = %d, want %d", m.timer.TimeLeft, full-1)
	}
}

func TestStaleTickDroppedAfterRestart(t *testing.T) {
	m := newTestModel(t)
	full := m.timer.TimeLeft

	m, _ = press(t, m, "s")
	staleGen := m.gen
	m, _ = press(t, m, "x")
	m, _ = press(t, m, "s")

	// The tick scheduled before the stop arrives during the new run. It
	// must neither advance the countdown nor reschedule itself.
	m, cmd := tick(t, m, staleGen)
	if cmd != nil {
		t.Fatal("stale tick rescheduled itself")
	}
	if m.timer.TimeLeft != full {
		t.Fatalf("stale tick moved the countdown: %d, want %d", m.timer.TimeLeft, full)
	}

	m, cmd = tick(t, m, m.gen)
	if cmd == nil {
		t.Fatal("current tick did not reschedule")
	}
	if m.timer.TimeLeft != full-1 {
		t.Fatalf("one second elapsed, countdown moved %d", full-m.timer.TimeLeft)
	}
}

func TestStaleTickDroppedAfterResume(t *testing.T) {
	m := newTestModel(t)
	m.timer.SetMode(engine.ModeRelax)
	full := m.timer.TimeLeft

	m, _ = press(t, m, "s")
	staleGen := m.gen
	m, _ = press(t, m, "p")
	if m.timer.State != engine.StatePaused {
		t.Fatalf("state after pause = %s", m.timer.State)
	}
	m, _ = press(t, m, "s")
	if m.timer.State != engine.StateRunning {
		t.Fatalf("state after resume = %s", m.timer.State)
	}

	m, cmd := tick(t, m, staleGen)
	if cmd != nil || m.timer.TimeLeft != full {
		t.Fatalf("pre-pause tick still live: cmd=%v timeLeft=%d", cmd, m.timer.TimeLeft)
	}
	m, cmd = tick(t, m, m.gen)
	if cmd == nil || m.timer.TimeLeft != full-1 {
		t.Fatalf("resumed loop broken: cmd=%v timeLeft=%d", cmd, m.timer.TimeLeft)
	}
}

func TestTickWhileStoppedIsDropped(t *testing.T) {
	m := newTestModel(t)
	full := m.timer.TimeLeft

	m, _ = press(t, m, "s")
	gen := m.gen
	m, _ = press(t, m, "x")

	m, cmd := tick(t, m, gen)
	if cmd != nil {
		t.Fatal("tick after stop rescheduled itself")
	}
	if m.timer.TimeLeft != full {
		t.Fatalf("tick after stop moved the countdown: %d", m.timer.TimeLeft)
	}
}

func TestPhaseCompletionRecordsThroughMessage(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "s")
	m.timer.TimeLeft = 1

	next, cmd := m.Update(tickMsg{gen: m.gen, at: time.Now()})
	m = next.(pomodoroModel)
	if cmd == nil {
		t.Fatal("completion produced no commands")
	}
	// The balance on screen moves only once the record message lands.
	if m.coins != 0 {
		t.Fatalf("coins updated before the record ran: %d", m.coins)
	}

	msg := m.recordCmd(engine.TickResult{
		PhaseCompleted: true,
		CompletedPhase: engine.PhaseWork,
		CompletedMode:  engine.ModeFocus,
		Duration:       25,
		StartedAt:      time.Now().Add(-25 * time.Minute),
		CoinsEarned:    engine.FocusWorkCoins,
	})()
	rec, ok := msg.(recordedMsg)
	if !ok {
		t.Fatalf("record command returned %T", msg)
	}
	if rec.session == nil || rec.coins != engine.FocusWorkCoins {
		t.Fatalf("recorded: session=%v coins=%d", rec.session, rec.coins)
	}

	next, _ = m.Update(rec)
	m = next.(pomodoroModel)
	if m.coins != engine.FocusWorkCoins {
		t.Fatalf("coins after record = %d, want %d", m.coins, engine.FocusWorkCoins)
	}
	if len(m.svc.Sessions()) != 1 {
		t.Fatalf("session log has %d entries", len(m.svc.Sessions()))
	}
}
