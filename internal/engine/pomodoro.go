package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

type TimerState string

const (
	StateIdle    TimerState = "idle"
	StateRunning TimerState = "running"
	StatePaused  TimerState = "paused"
)

type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

type Mode string

const (
	ModeFocus Mode = "focus"
	ModeRelax Mode = "relax"
)

// Coin rewards for finishing a work phase. Break phases award nothing.
const (
	FocusWorkCoins = 8
	RelaxWorkCoins = 3
)

func DefaultPomodoroSettings() storage.PomodoroSettings {
	return storage.PomodoroSettings{
		Mode:             string(ModeFocus),
		FocusMinutes:     25,
		BreakMinutes:     5,
		SoundEnabled:     true,
		AnimationEnabled: true,
	}
}

// Timer is the pomodoro countdown state machine. The run state, phase and
// mode are explicit tags, so combinations like paused-while-idle cannot be
// represented. All transitions are total: an illegal request is a no-op.
type Timer struct {
	State    TimerState
	Phase    Phase
	TimeLeft int // seconds
	TaskID   string

	Settings storage.PomodoroSettings

	sessionStart time.Time
}

func NewTimer(settings storage.PomodoroSettings) *Timer {
	t := &Timer{
		State:    StateIdle,
		Phase:    PhaseWork,
		Settings: settings,
	}
	t.TimeLeft = t.phaseDuration(t.Phase)
	return t
}

func (t *Timer) Mode() Mode { return Mode(t.Settings.Mode) }

func (t *Timer) phaseDuration(p Phase) int {
	if p == PhaseBreak {
		return t.Settings.BreakMinutes * 60
	}
	return t.Settings.FocusMinutes * 60
}

// Start begins the countdown for the current phase.
func (t *Timer) Start(now time.Time) {
	if t.State != StateIdle {
		return
	}
	t.State = StateRunning
	t.sessionStart = now
}

// Pause suspends the countdown. Only the relax mode allows pausing; in focus
// mode this is a no-op.
func (t *Timer) Pause() {
	if t.State != StateRunning || t.Mode() != ModeRelax {
		return
	}
	t.State = StatePaused
}

// Resume continues a paused countdown from the retained remaining time.
func (t *Timer) Resume() {
	if t.State != StatePaused {
		return
	}
	t.State = StateRunning
}

// Stop cancels the countdown and resets the remaining time to the full
// duration of the current phase. The phase itself does not change, and no
// session is recorded for the abandoned run.
func (t *Timer) Stop() {
	if t.State == StateIdle {
		return
	}
	t.State = StateIdle
	t.TimeLeft = t.phaseDuration(t.Phase)
}

// SetMode switches between focus and relax. Only allowed while idle.
func (t *Timer) SetMode(m Mode) {
	if t.State != StateIdle {
		return
	}
	if m != ModeFocus && m != ModeRelax {
		return
	}
	t.Settings.Mode = string(m)
}

// SetFocusMinutes adjusts the work phase length while idle, updating the
// displayed remaining time when the work phase is the current one.
func (t *Timer) SetFocusMinutes(minutes int) {
	if t.State != StateIdle || minutes <= 0 {
		return
	}
	t.Settings.FocusMinutes = minutes
	if t.Phase == PhaseWork {
		t.TimeLeft = t.phaseDuration(PhaseWork)
	}
}

// SetBreakMinutes is the break-phase counterpart of SetFocusMinutes.
func (t *Timer) SetBreakMinutes(minutes int) {
	if t.State != StateIdle || minutes <= 0 {
		return
	}
	t.Settings.BreakMinutes = minutes
	if t.Phase == PhaseBreak {
		t.TimeLeft = t.phaseDuration(PhaseBreak)
	}
}

// TickResult describes what happened during one 1-second tick.
type TickResult struct {
	PhaseCompleted bool
	CompletedPhase Phase
	CompletedMode  Mode
	CoinsEarned    int
	Duration       int // planned minutes of the completed phase
	StartedAt      time.Time
	AutoContinued  bool
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the phase-completion transition fires: the work phase awards coins
// (8 in focus mode, 3 in relax mode; breaks award 0), the phase flips, the
// remaining time resets to the new phase's duration, and the timer keeps
// running only if the matching auto-start setting is on.
func (t *Timer) Tick(now time.Time) TickResult {
	if t.State != StateRunning {
		return TickResult{}
	}

	t.TimeLeft--
	if t.TimeLeft > 0 {
		return TickResult{}
	}
	t.TimeLeft = 0

	res := TickResult{
		PhaseCompleted: true,
		CompletedPhase: t.Phase,
		CompletedMode:  t.Mode(),
		Duration:       t.phaseDuration(t.Phase) / 60,
		StartedAt:      t.sessionStart,
	}
	if t.Phase == PhaseWork {
		if t.Mode() == ModeFocus {
			res.CoinsEarned = FocusWorkCoins
		} else {
			res.CoinsEarned = RelaxWorkCoins
		}
	}

	autoContinue := false
	if t.Phase == PhaseWork {
		t.Phase = PhaseBreak
		autoContinue = t.Settings.AutoStartBreak
	} else {
		t.Phase = PhaseWork
		autoContinue = t.Settings.AutoStartNextPomodoro
	}
	t.TimeLeft = t.phaseDuration(t.Phase)

	if autoContinue {
		t.sessionStart = now
		res.AutoContinued = true
	} else {
		t.State = StateIdle
	}
	return res
}

// PomodoroPhaseRecord finalizes one completed phase into the session log.
type PomodoroPhaseRecord struct {
	TaskID      string
	Mode        Mode
	Phase       Phase
	Duration    int // minutes
	StartedAt   time.Time
	CoinsEarned int
}

// RecordPomodoroPhase appends a completed session entry and credits any
// coins to the profile. The pomodorosCompleted stats counter is a reserved
// field with no write path here.
func (s *Service) RecordPomodoroPhase(ctx context.Context, rec PomodoroPhaseRecord) *storage.PomodoroSession {
	now := time.Now()
	session := storage.PomodoroSession{
		ID:          uuid.NewString(),
		TaskID:      rec.TaskID,
		Mode:        string(rec.Mode),
		Type:        string(rec.Phase),
		Duration:    rec.Duration,
		StartTime:   rec.StartedAt,
		EndTime:     &now,
		Completed:   true,
		CoinsEarned: rec.CoinsEarned,
	}
	s.sessions = append(s.sessions, session)

	pairs := []kvPair{{storage.KeyPomodoroSessions, s.sessions}}
	if rec.CoinsEarned > 0 {
		s.profile.Coins += rec.CoinsEarned
		pairs = append(pairs, kvPair{storage.KeyProfile, s.profile})
	}
	s.persist(ctx, pairs...)
	return &s.sessions[len(s.sessions)-1]
}

// UpdatePomodoroSettings stores the new settings aggregate.
func (s *Service) UpdatePomodoroSettings(ctx context.Context, settings storage.PomodoroSettings) {
	s.settings = settings
	s.persist(ctx, kvPair{storage.KeyPomodoroSettings, s.settings})
}
