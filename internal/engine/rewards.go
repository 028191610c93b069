package engine

import "math"

// DifficultyInfo maps a difficulty to its energy cost and base seed reward.
type DifficultyInfo struct {
	Energy    int
	BaseSeeds int
	Label     string
	Color     string
}

var DifficultyConfig = map[Difficulty]DifficultyInfo{
	DifficultyEasy:   {Energy: 1, BaseSeeds: 10, Label: "Easy", Color: "#90EE90"},
	DifficultyNormal: {Energy: 2, BaseSeeds: 25, Label: "Normal", Color: "#FFD700"},
	DifficultyHard:   {Energy: 3, BaseSeeds: 50, Label: "Hard", Color: "#FF6347"},
	DifficultyHell:   {Energy: 5, BaseSeeds: 100, Label: "Hell", Color: "#8B008B"},
}

const (
	// SubTaskSeedBonus is granted per completed subtask, both inside the
	// completion formula and as the flat toggle bonus.
	SubTaskSeedBonus = 5

	// FullCompletionMultiplier applies when every subtask is done.
	FullCompletionMultiplier = 1.2
)

// CalculateSeeds computes the seed reward for completing a task:
// base seeds for the difficulty, plus 5 per completed subtask, with a 20%
// bonus (floored) when all subtasks are done. Tasks without subtasks never
// receive the completion bonus.
func CalculateSeeds(difficulty Difficulty, subTasksCompleted, totalSubTasks int) int {
	base := DifficultyConfig[difficulty].BaseSeeds

	total := base + subTasksCompleted*SubTaskSeedBonus

	if totalSubTasks > 0 && subTasksCompleted == totalSubTasks {
		total = int(math.Floor(float64(total) * FullCompletionMultiplier))
	}

	return total
}

// CalculateExp mirrors CalculateSeeds exactly. Experience and coin gains are
// numerically equal per event and downstream consumers rely on that.
func CalculateExp(difficulty Difficulty, subTasksCompleted, totalSubTasks int) int {
	return CalculateSeeds(difficulty, subTasksCompleted, totalSubTasks)
}
