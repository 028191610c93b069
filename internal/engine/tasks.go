package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

type AddTaskInput struct {
	Type        TaskType
	Title       string
	Description string
	Difficulty  Difficulty
	StartTime   time.Time
	EndTime     time.Time
	IsAllDay    bool
	Category    string
	Color       string
	SubTasks    []string
}

// AddTask creates a task from the input, assigning its id, creation time and
// zeroed reward counters. All-day tasks get their time window normalized to
// span the whole start date.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	typ := in.Type
	if !typ.IsValid() {
		typ = TaskTypeTask
	}
	diff := in.Difficulty
	if !diff.IsValid() {
		diff = DefaultDifficulty
	}

	start, end := in.StartTime, in.EndTime
	if in.IsAllDay {
		start = DayStart(start)
		end = DayEnd(start)
	}

	subTasks := make([]storage.SubTask, 0, len(in.SubTasks))
	for _, st := range in.SubTasks {
		subTasks = append(subTasks, storage.SubTask{
			ID:    uuid.NewString(),
			Title: st,
		})
	}

	task := storage.Task{
		ID:          uuid.NewString(),
		Type:        string(typ),
		Title:       title,
		Description: in.Description,
		Difficulty:  string(diff),
		StartTime:   start,
		EndTime:     end,
		IsAllDay:    in.IsAllDay,
		Category:    in.Category,
		Color:       ColorByID(in.Color),
		SubTasks:    subTasks,
		CreatedAt:   time.Now(),
	}

	s.tasks = append(s.tasks, task)
	s.persist(ctx, kvPair{storage.KeyTasks, s.tasks})
	return &task, nil
}

// UpdateTaskInput merges set fields into an existing task. The engine does
// not recompute CompletedSubTasks or SeedsEarned here; a caller replacing
// the subtask list supplies the matching counter itself.
type UpdateTaskInput struct {
	Title             *string
	Description       *string
	Difficulty        *Difficulty
	StartTime         *time.Time
	EndTime           *time.Time
	IsAllDay          *bool
	Category          *string
	Color             *string
	SubTasks          []storage.SubTask
	CompletedSubTasks *int
}

// UpdateTask applies a partial update. Unknown ids are a no-op.
func (s *Service) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) *storage.Task {
	t := s.TaskByID(id)
	if t == nil {
		return nil
	}

	if in.Title != nil {
		if title, err := normalizeTitle(*in.Title); err == nil {
			t.Title = title
		}
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Difficulty != nil && in.Difficulty.IsValid() {
		t.Difficulty = string(*in.Difficulty)
	}
	if in.StartTime != nil {
		t.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		t.EndTime = *in.EndTime
	}
	if in.IsAllDay != nil {
		t.IsAllDay = *in.IsAllDay
	}
	if t.IsAllDay {
		t.StartTime = DayStart(t.StartTime)
		t.EndTime = DayEnd(t.StartTime)
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Color != nil {
		t.Color = ColorByID(*in.Color)
	}
	if in.SubTasks != nil {
		t.SubTasks = in.SubTasks
	}
	if in.CompletedSubTasks != nil {
		t.CompletedSubTasks = *in.CompletedSubTasks
	}

	s.persist(ctx, kvPair{storage.KeyTasks, s.tasks})
	return t
}

// DeleteTask removes a task by id. Unknown ids are a no-op; there are no
// cascading side effects.
func (s *Service) DeleteTask(ctx context.Context, id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(ctx, kvPair{storage.KeyTasks, s.tasks})
			return true
		}
	}
	return false
}

type ToggleResult struct {
	TaskID      string
	Completed   bool
	SeedsEarned int
	ExpEarned   int
}

// ToggleTask flips a task's completed flag. The incomplete→complete
// transition grants seeds and experience from the task's current subtask
// counters, bumps the completed-task counter, and freezes the award on the
// task. The reverse transition only flips the flag: rewards are never
// revoked, and a later re-completion grants them again from scratch.
func (s *Service) ToggleTask(ctx context.Context, id string) *ToggleResult {
	t := s.TaskByID(id)
	if t == nil {
		return nil
	}

	t.Completed = !t.Completed
	res := &ToggleResult{TaskID: t.ID, Completed: t.Completed}

	if !t.Completed {
		s.persist(ctx, kvPair{storage.KeyTasks, s.tasks})
		return res
	}

	seeds := CalculateSeeds(Difficulty(t.Difficulty), t.CompletedSubTasks, len(t.SubTasks))
	exp := CalculateExp(Difficulty(t.Difficulty), t.CompletedSubTasks, len(t.SubTasks))

	t.SeedsEarned = seeds
	s.profile.Coins += seeds
	s.profile.Experience += exp
	s.stats.TotalTasksCompleted++

	res.SeedsEarned = seeds
	res.ExpEarned = exp

	s.persist(ctx,
		kvPair{storage.KeyTasks, s.tasks},
		kvPair{storage.KeyProfile, s.profile},
		kvPair{storage.KeyStats, s.stats},
	)
	return res
}

type SubTaskToggleResult struct {
	TaskID            string
	SubTaskID         string
	Completed         bool
	SeedsEarned       int
	CompletedSubTasks int
}

// ToggleSubTask flips one subtask and recounts the parent's completed-subtask
// cache. Checking a subtask grants a flat seed bonus; unchecking reclaims
// nothing. The parent task's own completed flag is not consulted.
func (s *Service) ToggleSubTask(ctx context.Context, taskID, subTaskID string) *SubTaskToggleResult {
	t := s.TaskByID(taskID)
	if t == nil {
		return nil
	}

	var st *storage.SubTask
	for i := range t.SubTasks {
		if t.SubTasks[i].ID == subTaskID {
			st = &t.SubTasks[i]
			break
		}
	}
	if st == nil {
		return nil
	}

	st.Completed = !st.Completed

	count := 0
	for _, sub := range t.SubTasks {
		if sub.Completed {
			count++
		}
	}
	t.CompletedSubTasks = count

	res := &SubTaskToggleResult{
		TaskID:            t.ID,
		SubTaskID:         st.ID,
		Completed:         st.Completed,
		CompletedSubTasks: count,
	}

	if st.Completed {
		s.profile.Coins += SubTaskSeedBonus
		res.SeedsEarned = SubTaskSeedBonus
		s.persist(ctx,
			kvPair{storage.KeyTasks, s.tasks},
			kvPair{storage.KeyProfile, s.profile},
		)
		return res
	}

	s.persist(ctx, kvPair{storage.KeyTasks, s.tasks})
	return res
}
