package scheduler

import (
	"testing"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

func scn(num int, loc string, lt model.LocationType, tod model.TimeOfDay, hours float64) model.Scene {
	return model.Scene{
		SceneNumber:    num,
		LocationName:   loc,
		LocationType:   lt,
		TimeOfDay:      tod,
		EstimatedHours: hours,
	}
}

func TestGroupScenes_FirstSeenOrder(t *testing.T) {
	scenes := []model.Scene{
		scn(1, "DINER", model.LocationInt, model.TimeDay, 1),
		scn(2, "PARK", model.LocationExt, model.TimeDay, 1),
		scn(3, "DINER", model.LocationInt, model.TimeNight, 1),
		scn(4, "", model.LocationUnknown, model.TimeUnknown, 1),
	}
	groups := groupScenes(scenes)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].name != "DINER" || groups[1].name != "PARK" || groups[2].name != "" {
		t.Errorf("unexpected group order: %q %q %q", groups[0].name, groups[1].name, groups[2].name)
	}
	if len(groups[0].scenes) != 2 {
		t.Errorf("DINER has %d scenes, want 2", len(groups[0].scenes))
	}
}

func TestRankGroups_DescendingCountStableTies(t *testing.T) {
	scenes := []model.Scene{
		scn(1, "A", model.LocationInt, model.TimeDay, 1),
		scn(2, "B", model.LocationInt, model.TimeDay, 1),
		scn(3, "B", model.LocationInt, model.TimeDay, 1),
		scn(4, "C", model.LocationInt, model.TimeDay, 1),
	}
	ranked := rankGroups(groupScenes(scenes))
	got := []string{ranked[0].name, ranked[1].name, ranked[2].name}
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank order = %v, want %v", got, want)
		}
	}
}

func TestRankGroups_SkipsEmpty(t *testing.T) {
	groups := groupScenes([]model.Scene{scn(1, "A", model.LocationInt, model.TimeDay, 1)})
	groups[0].remove(map[int]bool{0: true})
	if ranked := rankGroups(groups); len(ranked) != 0 {
		t.Fatalf("drained group should not be ranked, got %d", len(ranked))
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	g := &locationGroup{name: "A", scenes: []model.Scene{
		scn(1, "A", model.LocationInt, model.TimeDay, 1),
		scn(2, "A", model.LocationInt, model.TimeDay, 1),
		scn(3, "A", model.LocationInt, model.TimeDay, 1),
	}}
	g.remove(map[int]bool{1: true})
	if len(g.scenes) != 2 || g.scenes[0].SceneNumber != 1 || g.scenes[1].SceneNumber != 3 {
		t.Fatalf("unexpected remainder: %+v", g.scenes)
	}
}
