package scheduler

import (
	"testing"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

func TestSortByTimeOfDay_BucketOrder(t *testing.T) {
	scenes := []model.Scene{
		scn(1, "A", model.LocationInt, model.TimeNight, 1),
		scn(2, "A", model.LocationInt, model.TimeMorning, 1),
		scn(3, "A", model.LocationInt, model.TimeUnknown, 1),
		scn(4, "A", model.LocationInt, model.TimeEvening, 1),
	}
	sortByTimeOfDay(scenes)
	want := []model.TimeOfDay{model.TimeMorning, model.TimeEvening, model.TimeNight, model.TimeUnknown}
	for i, w := range want {
		if scenes[i].TimeOfDay != w {
			t.Fatalf("position %d = %s, want %s", i, scenes[i].TimeOfDay, w)
		}
	}
}

func TestSortByTimeOfDay_DaySharesLastBucket(t *testing.T) {
	// DAY is not part of the rank vocabulary; it sorts with UNKNOWN at
	// the end, keeping relative order.
	scenes := []model.Scene{
		scn(1, "A", model.LocationInt, model.TimeDay, 1),
		scn(2, "A", model.LocationInt, model.TimeNight, 1),
		scn(3, "A", model.LocationInt, model.TimeUnknown, 1),
	}
	sortByTimeOfDay(scenes)
	if scenes[0].SceneNumber != 2 {
		t.Fatalf("night scene should lead, got scene %d", scenes[0].SceneNumber)
	}
	if scenes[1].SceneNumber != 1 || scenes[2].SceneNumber != 3 {
		t.Fatalf("DAY and UNKNOWN should keep relative order, got %d then %d", scenes[1].SceneNumber, scenes[2].SceneNumber)
	}
}

func TestSortByTimeOfDay_StableWithinBucket(t *testing.T) {
	scenes := []model.Scene{
		scn(5, "A", model.LocationInt, model.TimeNight, 1),
		scn(6, "A", model.LocationInt, model.TimeNight, 1),
		scn(7, "A", model.LocationInt, model.TimeNight, 1),
	}
	sortByTimeOfDay(scenes)
	if scenes[0].SceneNumber != 5 || scenes[1].SceneNumber != 6 || scenes[2].SceneNumber != 7 {
		t.Fatalf("stable sort violated: %+v", scenes)
	}
}
