package scheduler

import (
	"sort"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

// locationGroup holds the pending scenes of one location. The packer owns
// the group for the duration of a scheduling call and drains it as scenes
// are placed.
type locationGroup struct {
	name   string
	scenes []model.Scene
}

// groupScenes partitions scenes by location name in first-seen order.
// The empty string is a valid location bucket of its own.
func groupScenes(scenes []model.Scene) []*locationGroup {
	idx := make(map[string]int, len(scenes))
	var groups []*locationGroup
	for _, sc := range scenes {
		i, ok := idx[sc.LocationName]
		if !ok {
			i = len(groups)
			idx[sc.LocationName] = i
			groups = append(groups, &locationGroup{name: sc.LocationName})
		}
		groups[i].scenes = append(groups[i].scenes, sc)
	}
	return groups
}

// rankGroups returns the non-empty groups ordered by descending scene
// count. Ties keep first-seen order, so ranking is deterministic for a
// fixed input order.
func rankGroups(groups []*locationGroup) []*locationGroup {
	ranked := make([]*locationGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.scenes) > 0 {
			ranked = append(ranked, g)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].scenes) > len(ranked[j].scenes)
	})
	return ranked
}

// remove deletes the scenes at the given indices from the group,
// preserving the relative order of the remainder.
func (g *locationGroup) remove(indices map[int]bool) {
	if len(indices) == 0 {
		return
	}
	kept := g.scenes[:0]
	for i, sc := range g.scenes {
		if !indices[i] {
			kept = append(kept, sc)
		}
	}
	g.scenes = kept
}
