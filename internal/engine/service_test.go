package engine

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

func openTestService(t *testing.T, path string) *Service {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewService(ctx, db, "Testy")
	svc.SetLogger(log.New(io.Discard, "", 0))
	return svc
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return openTestService(t, filepath.Join(t.TempDir(), "hamster.db"))
}

func TestNewServiceDefaults(t *testing.T) {
	svc := newTestService(t)

	p := svc.Profile()
	if p.Name != "Testy" || p.Level != 1 || p.Coins != 0 || p.Experience != 0 {
		t.Fatalf("fresh profile = %+v", p)
	}
	if p.Items == nil || len(p.Items) != 0 {
		t.Fatalf("fresh profile items = %#v, want empty non-nil list", p.Items)
	}
	if len(svc.Tasks()) != 0 || len(svc.Sessions()) != 0 {
		t.Fatal("fresh service has leftover tasks or sessions")
	}
	if got := svc.Settings(); got != DefaultPomodoroSettings() {
		t.Fatalf("fresh settings = %+v", got)
	}
}

func TestNewServiceBlankNameFallsBack(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "hamster.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	svc := NewService(ctx, db, "   ")
	if got := svc.Profile().Name; got != DefaultProfileName {
		t.Fatalf("profile name = %q, want %q", got, DefaultProfileName)
	}
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hamster.db")

	svc := openTestService(t, path)
	task, err := svc.AddTask(ctx, AddTaskInput{Title: "water the sunflowers", Difficulty: DifficultyEasy})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if svc.ToggleTask(ctx, task.ID) == nil {
		t.Fatal("toggle returned nil")
	}
	svc.db.Close()

	reopened := openTestService(t, path)
	if len(reopened.Tasks()) != 1 {
		t.Fatalf("reopened with %d tasks, want 1", len(reopened.Tasks()))
	}
	got := reopened.Tasks()[0]
	if got.ID != task.ID || !got.Completed || got.SeedsEarned != 10 {
		t.Fatalf("reopened task = %+v", got)
	}
	if reopened.Profile().Coins != 10 || reopened.Profile().Experience != 10 {
		t.Fatalf("reopened profile = %+v", reopened.Profile())
	}
	if reopened.Stats().TotalTasksCompleted != 1 {
		t.Fatalf("reopened stats = %+v", reopened.Stats())
	}
	if reopened.Profile().Name != "Testy" {
		t.Fatalf("reopened profile name = %q", reopened.Profile().Name)
	}
}

func TestLoadAssignsDefaultColorToLegacyTasks(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "hamster.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	// Snapshot written before tasks carried a color.
	legacy := []map[string]any{
		{"id": "old-1", "title": "feed the hamster", "difficulty": "easy"},
		{"id": "old-2", "title": "clean the wheel", "difficulty": "hard", "color": "#6EC5FF"},
	}
	if err := storage.NewKV(db).Set(ctx, storage.KeyTasks, legacy); err != nil {
		t.Fatalf("seed tasks: %v", err)
	}

	svc := NewService(ctx, db, "Testy")
	tasks := svc.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("loaded %d tasks, want 2", len(tasks))
	}
	if tasks[0].Color != DefaultColor {
		t.Fatalf("legacy task color = %q, want %q", tasks[0].Color, DefaultColor)
	}
	if tasks[1].Color != "#6EC5FF" {
		t.Fatalf("colored task rewritten to %q", tasks[1].Color)
	}
}

func TestLoadDegradesOnCorruptAggregate(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "hamster.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	kv := storage.NewKV(db)
	if err := kv.Set(ctx, storage.KeyTasks, "not a task list"); err != nil {
		t.Fatalf("seed tasks: %v", err)
	}
	if err := kv.Set(ctx, storage.KeyProfile, 42); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	svc := NewService(ctx, db, "Testy")
	if len(svc.Tasks()) != 0 {
		t.Fatalf("corrupt tasks loaded as %d entries", len(svc.Tasks()))
	}
	if svc.Profile().Name != "Testy" || svc.Profile().Level != 1 {
		t.Fatalf("corrupt profile did not degrade to default: %+v", svc.Profile())
	}
}
