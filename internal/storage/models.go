package storage

import "time"

// JSON field names match the snapshot layout written by earlier releases,
// so an existing database keeps loading after upgrades.

type SubTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // "task" | "challenge"
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Difficulty  string    `json:"difficulty"` // "easy" | "normal" | "hard" | "hell"
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAllDay    bool      `json:"isAllDay"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	SubTasks    []SubTask `json:"subTasks"`
	Completed   bool      `json:"completed"`
	// CompletedSubTasks caches the number of completed subtasks; the engine
	// recounts it on every subtask toggle.
	CompletedSubTasks int       `json:"completedSubTasks"`
	SeedsEarned       int       `json:"seedsEarned"`
	CreatedAt         time.Time `json:"createdAt"`
}

type PomodoroSession struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"taskId,omitempty"`
	Mode        string     `json:"mode"`     // "focus" | "relax"
	Type        string     `json:"type"`     // "work" | "break"
	Duration    int        `json:"duration"` // minutes
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Completed   bool       `json:"completed"`
	CoinsEarned int        `json:"coinsEarned"`
	Interrupted bool       `json:"interrupted"`
}

type PomodoroSettings struct {
	Mode                  string `json:"mode"`
	FocusMinutes          int    `json:"focusMinutes"`
	BreakMinutes          int    `json:"breakMinutes"`
	AutoStartBreak        bool   `json:"autoStartBreak"`
	AutoStartNextPomodoro bool   `json:"autoStartNextPomodoro"`
	SoundEnabled          bool   `json:"soundEnabled"`
	AnimationEnabled      bool   `json:"animationEnabled"`
}

type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"` // "habitat" | "decoration" | "food"
	Cost  int    `json:"cost"`
	Owned bool   `json:"owned"`
}

type Profile struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Coins      int    `json:"coins"`
	Items      []Item `json:"items"`
}

// Stats counters. Only TotalTasksCompleted currently has a write path; the
// remaining fields are reserved and round-trip untouched.
type Stats struct {
	TotalTasksCompleted int `json:"totalTasksCompleted"`
	TotalTimeTracked    int `json:"totalTimeTracked"` // minutes
	CurrentStreak       int `json:"currentStreak"`
	LongestStreak       int `json:"longestStreak"`
	PomodorosCompleted  int `json:"pomodorosCompleted"`
}

// StoryProgress records which narrative fragments have been unlocked.
type StoryProgress struct {
	UnlockedFragments []string `json:"unlockedFragments"`
}
