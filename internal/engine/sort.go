package engine

import (
	"sort"
	"time"

	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

// TasksForDay filters tasks whose start time falls on the given calendar
// date. The comparison is date-only; time of day and the all-day flag are
// ignored here.
func TasksForDay(tasks []storage.Task, date time.Time) []storage.Task {
	var out []storage.Task
	for _, t := range tasks {
		if SameDay(t.StartTime, date) {
			out = append(out, t)
		}
	}
	return out
}

// SortForDay orders a day's tasks for display: all-day entries first,
// ordered by creation time, then timed entries ordered by start time. The
// sort is stable, so equal keys keep their original order.
func SortForDay(tasks []storage.Task) []storage.Task {
	out := make([]storage.Task, len(tasks))
	copy(out, tasks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsAllDay != b.IsAllDay {
			return a.IsAllDay
		}
		if a.IsAllDay {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.StartTime.Before(b.StartTime)
	})
	return out
}

// HasTasksOnDay reports whether any task starts on the given date.
func HasTasksOnDay(tasks []storage.Task, date time.Time) bool {
	for _, t := range tasks {
		if SameDay(t.StartTime, date) {
			return true
		}
	}
	return false
}

// TaskCountForDay counts tasks starting on the given date.
func TaskCountForDay(tasks []storage.Task, date time.Time) int {
	return len(TasksForDay(tasks, date))
}
