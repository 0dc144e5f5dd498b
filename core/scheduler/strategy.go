package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

// SceneOrderer decides the order in which a location's pending scenes are
// attempted for the current day. Order returns a permutation of indices
// into pending; day holds the scenes already placed in the day under
// construction.
type SceneOrderer interface {
	Order(pending []model.Scene, day []model.Scene) []int
}

// NewOrderer returns the orderer for the named strategy.
func NewOrderer(name string) (SceneOrderer, error) {
	switch name {
	case StrategyLocation:
		return LocationOrderer{}, nil
	case StrategyCast:
		return CastOrderer{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// LocationOrderer groups a location's scenes by sub-location, ranks the
// sub-locations by descending scene count and orders each block by
// location-type/time-of-day class. Exterior day scenes come first because
// they can only be shot in daylight; interior scenes are flexible and
// scheduled around them.
type LocationOrderer struct{}

// classRank is the fixed shooting-class priority. Anything outside the
// four known combinations keeps its original relative position in a
// trailing bucket.
func classRank(sc model.Scene) int {
	day := sc.TimeOfDay == model.TimeDay || sc.TimeOfDay == model.TimeEvening
	switch {
	case sc.LocationType == model.LocationExt && day:
		return 0
	case sc.LocationType == model.LocationInt && day:
		return 1
	case sc.LocationType == model.LocationInt && sc.TimeOfDay == model.TimeNight:
		return 2
	case sc.LocationType == model.LocationExt && sc.TimeOfDay == model.TimeNight:
		return 3
	default:
		return 4
	}
}

func (LocationOrderer) Order(pending []model.Scene, _ []model.Scene) []int {
	// Sub-location blocks in first-seen order, ranked by size.
	subIdx := make(map[string]int)
	var subs [][]int
	for i, sc := range pending {
		j, ok := subIdx[sc.SubLocationName]
		if !ok {
			j = len(subs)
			subIdx[sc.SubLocationName] = j
			subs = append(subs, nil)
		}
		subs[j] = append(subs[j], i)
	}
	blockOrder := make([]int, len(subs))
	for i := range blockOrder {
		blockOrder[i] = i
	}
	sort.SliceStable(blockOrder, func(a, b int) bool {
		return len(subs[blockOrder[a]]) > len(subs[blockOrder[b]])
	})

	order := make([]int, 0, len(pending))
	for _, b := range blockOrder {
		block := append([]int(nil), subs[b]...)
		sort.SliceStable(block, func(a, c int) bool {
			return classRank(pending[block[a]]) < classRank(pending[block[c]])
		})
		order = append(order, block...)
	}
	return order
}

// CastOrderer seeds the day with the scene carrying the largest cast and
// then repeatedly picks the pending scene with the most cast members
// already present on set. Ties keep original relative order. This trades
// time-of-day continuity for fewer idle actor hours, which pays off on
// short or variable day budgets.
type CastOrderer struct{}

func (CastOrderer) Order(pending []model.Scene, day []model.Scene) []int {
	present := make(map[string]bool)
	for _, sc := range day {
		for _, c := range sc.Characters {
			present[castKey(c)] = true
		}
	}

	order := make([]int, 0, len(pending))
	used := make([]bool, len(pending))

	for len(order) < len(pending) {
		best := -1
		bestScore := -1
		for i, sc := range pending {
			if used[i] {
				continue
			}
			var score int
			if len(present) == 0 {
				// Nothing on set yet: seed with the largest cast.
				score = sc.CastSize()
			} else {
				score = overlap(sc, present)
			}
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		used[best] = true
		order = append(order, best)
		for _, c := range pending[best].Characters {
			present[castKey(c)] = true
		}
	}
	return order
}

func overlap(sc model.Scene, present map[string]bool) int {
	n := 0
	for _, c := range sc.Characters {
		if present[castKey(c)] {
			n++
		}
	}
	return n
}

func castKey(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}
