package engine

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

// DefaultProfileName is used on first load when no profile name is
// configured.
const DefaultProfileName = "My Hamster"

// Service is the single source of truth for all app state. State is loaded
// once at startup; every mutation updates memory first and then writes the
// touched aggregates back in one transaction. Write failures are logged and
// the in-memory state is kept, so persistence stays best-effort.
type Service struct {
	db  *sql.DB
	kv  *storage.KV
	log *log.Logger

	tasks    []storage.Task
	sessions []storage.PomodoroSession
	profile  storage.Profile
	stats    storage.Stats
	settings storage.PomodoroSettings
	story    storage.StoryProgress
}

func NewService(ctx context.Context, db *sql.DB, profileName string) *Service {
	if strings.TrimSpace(profileName) == "" {
		profileName = DefaultProfileName
	}
	s := &Service{
		db:  db,
		kv:  storage.NewKV(db),
		log: log.Default(),
	}
	s.load(ctx, profileName)
	return s
}

// SetLogger replaces the degraded-write logger. Mostly used by tests.
func (s *Service) SetLogger(l *log.Logger) {
	if l != nil {
		s.log = l
	}
}

// load pulls every aggregate from the snapshot store. A missing or unreadable
// aggregate degrades to its default instead of failing startup.
func (s *Service) load(ctx context.Context, profileName string) {
	if _, err := s.kv.Get(ctx, storage.KeyTasks, &s.tasks); err != nil {
		s.log.Printf("load tasks: %v", err)
		s.tasks = nil
	}
	s.tasks = migrateTaskColors(s.tasks)

	if _, err := s.kv.Get(ctx, storage.KeyPomodoroSessions, &s.sessions); err != nil {
		s.log.Printf("load pomodoro sessions: %v", err)
		s.sessions = nil
	}

	ok, err := s.kv.Get(ctx, storage.KeyProfile, &s.profile)
	if err != nil {
		s.log.Printf("load profile: %v", err)
	}
	if err != nil || !ok {
		s.profile = storage.Profile{Name: profileName, Level: 1, Items: []storage.Item{}}
	}

	if _, err := s.kv.Get(ctx, storage.KeyStats, &s.stats); err != nil {
		s.log.Printf("load stats: %v", err)
		s.stats = storage.Stats{}
	}

	ok, err = s.kv.Get(ctx, storage.KeyPomodoroSettings, &s.settings)
	if err != nil {
		s.log.Printf("load pomodoro settings: %v", err)
	}
	if err != nil || !ok {
		s.settings = DefaultPomodoroSettings()
	}

	if _, err := s.kv.Get(ctx, storage.KeyStoryProgress, &s.story); err != nil {
		s.log.Printf("load story progress: %v", err)
		s.story = storage.StoryProgress{}
	}
}

// migrateTaskColors assigns the default palette color to tasks saved before
// the color field existed. Applied on every load; idempotent.
func migrateTaskColors(tasks []storage.Task) []storage.Task {
	for i := range tasks {
		if tasks[i].Color == "" {
			tasks[i].Color = DefaultColor
		}
	}
	return tasks
}

type kvPair struct {
	key   string
	value any
}

// persist writes the given aggregates in a single transaction. Failures are
// logged, never propagated: in-memory state already moved on and stays
// authoritative for the rest of the process.
func (s *Service) persist(ctx context.Context, pairs ...kvPair) {
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, p := range pairs {
			if err := s.kv.SetTx(tx, p.key, p.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Printf("persist: %v", err)
	}
}

// Tasks returns the task collection. Presentation code reads through these
// accessors and mutates only through the operations below.
func (s *Service) Tasks() []storage.Task { return s.tasks }

func (s *Service) Sessions() []storage.PomodoroSession { return s.sessions }

func (s *Service) Profile() storage.Profile { return s.profile }

func (s *Service) Stats() storage.Stats { return s.stats }

func (s *Service) Settings() storage.PomodoroSettings { return s.settings }

// TaskByID returns the task with the given id, or nil.
func (s *Service) TaskByID(id string) *storage.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errEmptyTitle
	}
	return t, nil
}
