package engine

import (
	"math"
	"testing"
)

func TestCalculateSeedsFormula(t *testing.T) {
	for d, cfg := range DifficultyConfig {
		for total := 0; total <= 5; total++ {
			for done := 0; done <= total; done++ {
				want := cfg.BaseSeeds + done*SubTaskSeedBonus
				if total > 0 && done == total {
					want = int(math.Floor(float64(want) * FullCompletionMultiplier))
				}
				if got := CalculateSeeds(d, done, total); got != want {
					t.Fatalf("CalculateSeeds(%s, %d, %d)=%d, want %d", d, done, total, got, want)
				}
			}
		}
	}
}

func TestCalculateExpMirrorsSeeds(t *testing.T) {
	for d := range DifficultyConfig {
		for total := 0; total <= 4; total++ {
			for done := 0; done <= total; done++ {
				if CalculateExp(d, done, total) != CalculateSeeds(d, done, total) {
					t.Fatalf("exp and seeds diverge for (%s, %d, %d)", d, done, total)
				}
			}
		}
	}
}

func TestCalculateSeedsScenarios(t *testing.T) {
	// Hard task, 2 of 3 subtasks: 50 + 10, no completion bonus.
	if got := CalculateSeeds(DifficultyHard, 2, 3); got != 60 {
		t.Fatalf("hard 2/3: got %d, want 60", got)
	}
	// Same task fully done: floor((50+15)*1.2) = 78.
	if got := CalculateSeeds(DifficultyHard, 3, 3); got != 78 {
		t.Fatalf("hard 3/3: got %d, want 78", got)
	}
	// No subtasks means no completion bonus even though 0 == 0.
	if got := CalculateSeeds(DifficultyEasy, 0, 0); got != 10 {
		t.Fatalf("easy 0/0: got %d, want 10", got)
	}
}
