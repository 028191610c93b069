package engine

import "strings"

type TaskType string

const (
	TaskTypeTask      TaskType = "task"
	TaskTypeChallenge TaskType = "challenge"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeTask, TaskTypeChallenge:
		return true
	default:
		return false
	}
}

// ParseTaskType parses user input to a TaskType. Empty or unrecognized input
// falls back to the plain task type.
func ParseTaskType(input string) TaskType {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "challenge", "self-challenge":
		return TaskTypeChallenge
	default:
		return TaskTypeTask
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyHell   Difficulty = "hell"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyHell:
		return true
	default:
		return false
	}
}

// DefaultDifficulty is used when user input is missing/invalid.
const DefaultDifficulty Difficulty = DifficultyNormal

func ParseDifficulty(input string) Difficulty {
	s := strings.TrimSpace(strings.ToLower(input))
	d := Difficulty(s)
	if d.IsValid() {
		return d
	}
	return DefaultDifficulty
}

// CategorySuggestions is the fixed suggestion set offered when creating a
// task; any free-form label is accepted as well.
var CategorySuggestions = []string{"study", "fitness", "work", "self-improvement", "life"}
