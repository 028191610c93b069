package engine

import (
	"context"
	"testing"
	"time"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

func testSettings(mode Mode) storage.PomodoroSettings {
	s := DefaultPomodoroSettings()
	s.Mode = string(mode)
	return s
}

func TestNewTimerStartsIdleOnWorkPhase(t *testing.T) {
	timer := NewTimer(testSettings(ModeFocus))
	if timer.State != StateIdle || timer.Phase != PhaseWork {
		t.Fatalf("fresh timer: state=%s phase=%s", timer.State, timer.Phase)
	}
	if timer.TimeLeft != 25*60 {
		t.Fatalf("fresh timer has %d seconds left, want %d", timer.TimeLeft, 25*60)
	}
}

func TestTimerPauseOnlyInRelaxMode(t *testing.T) {
	now := time.Now()

	focus := NewTimer(testSettings(ModeFocus))
	focus.Start(now)
	focus.Pause()
	if focus.State != StateRunning {
		t.Fatalf("focus pause changed state to %s", focus.State)
	}

	relax := NewTimer(testSettings(ModeRelax))
	relax.Start(now)
	relax.Pause()
	if relax.State != StatePaused {
		t.Fatalf("relax pause left state %s", relax.State)
	}
	relax.Resume()
	if relax.State != StateRunning {
		t.Fatalf("resume left state %s", relax.State)
	}
}

func TestTimerStopResetsCurrentPhase(t *testing.T) {
	now := time.Now()
	timer := NewTimer(testSettings(ModeFocus))
	timer.Start(now)
	timer.Tick(now)
	timer.Tick(now)
	if timer.TimeLeft != 25*60-2 {
		t.Fatalf("time left = %d after two ticks", timer.TimeLeft)
	}

	timer.Stop()
	if timer.State != StateIdle || timer.Phase != PhaseWork {
		t.Fatalf("after stop: state=%s phase=%s", timer.State, timer.Phase)
	}
	if timer.TimeLeft != 25*60 {
		t.Fatalf("stop did not reset time: %d", timer.TimeLeft)
	}
}

func TestTimerSetModeOnlyWhileIdle(t *testing.T) {
	timer := NewTimer(testSettings(ModeFocus))
	timer.Start(time.Now())
	timer.SetMode(ModeRelax)
	if timer.Mode() != ModeFocus {
		t.Fatal("mode changed while running")
	}

	timer.Stop()
	timer.SetMode(ModeRelax)
	if timer.Mode() != ModeRelax {
		t.Fatal("mode change while idle rejected")
	}
	timer.SetMode("weird")
	if timer.Mode() != ModeRelax {
		t.Fatal("invalid mode accepted")
	}
}

func TestTimerDurationEditsWhileIdle(t *testing.T) {
	timer := NewTimer(testSettings(ModeFocus))

	timer.SetFocusMinutes(50)
	if timer.Settings.FocusMinutes != 50 || timer.TimeLeft != 50*60 {
		t.Fatalf("focus edit: minutes=%d timeLeft=%d", timer.Settings.FocusMinutes, timer.TimeLeft)
	}

	// Break edit while on the work phase leaves the countdown alone.
	timer.SetBreakMinutes(10)
	if timer.Settings.BreakMinutes != 10 || timer.TimeLeft != 50*60 {
		t.Fatalf("break edit: minutes=%d timeLeft=%d", timer.Settings.BreakMinutes, timer.TimeLeft)
	}

	timer.Start(time.Now())
	timer.SetFocusMinutes(5)
	if timer.Settings.FocusMinutes != 50 {
		t.Fatal("duration edit accepted while running")
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	timer := NewTimer(testSettings(ModeFocus))
	res := timer.Tick(time.Now())
	if res.PhaseCompleted || timer.TimeLeft != 25*60 {
		t.Fatalf("idle tick advanced the timer: %+v, timeLeft=%d", res, timer.TimeLeft)
	}
}

func TestTickWorkCompletionAwardsCoins(t *testing.T) {
	start := time.Date(2026, time.August, 27, 9, 0, 0, 0, time.Local)

	for _, tc := range []struct {
		mode  Mode
		coins int
	}{
		{ModeFocus, FocusWorkCoins},
		{ModeRelax, RelaxWorkCoins},
	} {
		settings := testSettings(tc.mode)
		settings.FocusMinutes = 1
		timer := NewTimer(settings)
		timer.Start(start)

		var res TickResult
		for i := 0; i < 60; i++ {
			res = timer.Tick(start.Add(time.Duration(i+1) * time.Second))
		}
		if !res.PhaseCompleted {
			t.Fatalf("%s: work phase never completed", tc.mode)
		}
		if res.CompletedPhase != PhaseWork || res.CompletedMode != tc.mode {
			t.Fatalf("%s: completed %s/%s", tc.mode, res.CompletedPhase, res.CompletedMode)
		}
		if res.CoinsEarned != tc.coins {
			t.Fatalf("%s: coins = %d, want %d", tc.mode, res.CoinsEarned, tc.coins)
		}
		if res.Duration != 1 || !res.StartedAt.Equal(start) {
			t.Fatalf("%s: duration=%d startedAt=%v", tc.mode, res.Duration, res.StartedAt)
		}

		// Auto-start is off, so the timer parks on the break phase.
		if timer.State != StateIdle || timer.Phase != PhaseBreak {
			t.Fatalf("%s: after completion state=%s phase=%s", tc.mode, timer.State, timer.Phase)
		}
		if timer.TimeLeft != timer.Settings.BreakMinutes*60 {
			t.Fatalf("%s: break countdown = %d", tc.mode, timer.TimeLeft)
		}
	}
}

func TestTickBreakCompletionAwardsNothing(t *testing.T) {
	settings := testSettings(ModeFocus)
	settings.BreakMinutes = 1
	timer := NewTimer(settings)
	timer.Phase = PhaseBreak
	timer.TimeLeft = 60
	timer.Start(time.Now())

	var res TickResult
	for i := 0; i < 60; i++ {
		res = timer.Tick(time.Now())
	}
	if !res.PhaseCompleted || res.CompletedPhase != PhaseBreak {
		t.Fatalf("break never completed: %+v", res)
	}
	if res.CoinsEarned != 0 {
		t.Fatalf("break awarded %d coins", res.CoinsEarned)
	}
	if timer.Phase != PhaseWork {
		t.Fatalf("phase after break = %s", timer.Phase)
	}
}

func TestTickAutoContinue(t *testing.T) {
	start := time.Date(2026, time.August, 27, 9, 0, 0, 0, time.Local)
	settings := testSettings(ModeFocus)
	settings.FocusMinutes = 1
	settings.BreakMinutes = 1
	settings.AutoStartBreak = true
	settings.AutoStartNextPomodoro = true

	timer := NewTimer(settings)
	timer.Start(start)

	var res TickResult
	for i := 0; i < 60; i++ {
		res = timer.Tick(start.Add(time.Duration(i+1) * time.Second))
	}
	if !res.AutoContinued || timer.State != StateRunning || timer.Phase != PhaseBreak {
		t.Fatalf("break did not auto-start: %+v state=%s phase=%s", res, timer.State, timer.Phase)
	}
	breakStart := start.Add(60 * time.Second)
	if !timer.sessionStart.Equal(breakStart) {
		t.Fatalf("session start = %v, want %v", timer.sessionStart, breakStart)
	}

	for i := 0; i < 60; i++ {
		res = timer.Tick(breakStart.Add(time.Duration(i+1) * time.Second))
	}
	if !res.AutoContinued || timer.State != StateRunning || timer.Phase != PhaseWork {
		t.Fatalf("next pomodoro did not auto-start: %+v state=%s phase=%s", res, timer.State, timer.Phase)
	}
}

func TestRecordPomodoroPhase(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	started := time.Now().Add(-25 * time.Minute)

	session := svc.RecordPomodoroPhase(ctx, PomodoroPhaseRecord{
		TaskID:      "t1",
		Mode:        ModeFocus,
		Phase:       PhaseWork,
		Duration:    25,
		StartedAt:   started,
		CoinsEarned: FocusWorkCoins,
	})
	if session.ID == "" || !session.Completed || session.EndTime == nil {
		t.Fatalf("session = %+v", session)
	}
	if session.Mode != string(ModeFocus) || session.Type != string(PhaseWork) || session.Duration != 25 {
		t.Fatalf("session = %+v", session)
	}
	if len(svc.Sessions()) != 1 {
		t.Fatalf("session log has %d entries", len(svc.Sessions()))
	}
	if svc.Profile().Coins != FocusWorkCoins {
		t.Fatalf("coins = %d, want %d", svc.Profile().Coins, FocusWorkCoins)
	}

	// Breaks are logged too, without touching the profile.
	svc.RecordPomodoroPhase(ctx, PomodoroPhaseRecord{Mode: ModeFocus, Phase: PhaseBreak, Duration: 5, StartedAt: time.Now()})
	if len(svc.Sessions()) != 2 || svc.Profile().Coins != FocusWorkCoins {
		t.Fatalf("break record: sessions=%d coins=%d", len(svc.Sessions()), svc.Profile().Coins)
	}

	// The pomodorosCompleted counter has no write path.
	if svc.Stats().PomodorosCompleted != 0 {
		t.Fatalf("pomodorosCompleted = %d", svc.Stats().PomodorosCompleted)
	}
}

func TestUpdatePomodoroSettings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	want := testSettings(ModeRelax)
	want.FocusMinutes = 45
	want.SoundEnabled = false
	svc.UpdatePomodoroSettings(ctx, want)

	if got := svc.Settings(); got != want {
		t.Fatalf("settings = %+v, want %+v", got, want)
	}
}
