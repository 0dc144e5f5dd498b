package scenarios

import (
	"math"
	"testing"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
	"github.com/cloudywalnut/ai-production-scheduler/core/scheduler"
	"github.com/cloudywalnut/ai-production-scheduler/infra/logger"
)

func RunScenario(t *testing.T, sc *Scenario) {
	scenes := make([]model.Scene, len(sc.Scenes))
	for i, d := range sc.Scenes {
		scenes[i] = d.ToModel()
	}

	days, err := scheduler.Schedule(sc.Config(), scenes, logger.NopLogger{})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	checkConservation(t, sc, scenes, days)

	for i, d := range days {
		if d.Number != i+1 {
			t.Errorf("day %d numbered %d", i+1, d.Number)
		}
		var sum float64
		for _, s := range d.Scenes {
			sum += s.EstimatedHours
		}
		if math.Abs(sum-d.TotalHours) > 1e-9 {
			t.Errorf("day %d total %.2f, scenes sum to %.2f", d.Number, d.TotalHours, sum)
		}
	}

	if sc.Expected.Days > 0 && len(days) != sc.Expected.Days {
		t.Errorf("scenario %s expected %d days, got %d", sc.Name, sc.Expected.Days, len(days))
	}
	for i, want := range sc.Expected.DayHours {
		if i >= len(days) {
			break
		}
		if math.Abs(days[i].TotalHours-want) > 1e-9 {
			t.Errorf("day %d expected %.2fh, got %.2fh", i+1, want, days[i].TotalHours)
		}
	}
	for i, want := range sc.Expected.DayScenes {
		if i >= len(days) {
			break
		}
		got := sceneNumbers(days[i].Scenes)
		if !equalInts(got, want) {
			t.Errorf("day %d expected scenes %v, got %v", i+1, want, got)
		}
	}
}

// checkConservation verifies every input scene is placed exactly once.
func checkConservation(t *testing.T, sc *Scenario, scenes []model.Scene, days []model.Day) {
	seen := make(map[int]int)
	for _, d := range days {
		for _, s := range d.Scenes {
			seen[s.SceneNumber]++
		}
	}
	for _, s := range scenes {
		if seen[s.SceneNumber] != 1 {
			t.Errorf("scenario %s scene %d placed %d times", sc.Name, s.SceneNumber, seen[s.SceneNumber])
		}
	}
}

func sceneNumbers(scenes []model.Scene) []int {
	out := make([]int, len(scenes))
	for i, s := range scenes {
		out[i] = s.SceneNumber
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
