package scheduler

import (
	"sort"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

// todRank is the shooting-continuity order applied to a finished day:
// morning first, then evening, then night. DAY and any value outside the
// vocabulary share the trailing UNKNOWN bucket; sorting is stable, so
// unmapped values keep their relative order instead of erroring.
var todRank = map[model.TimeOfDay]int{
	model.TimeMorning: 0,
	model.TimeEvening: 1,
	model.TimeNight:   2,
	model.TimeUnknown: 3,
}

func timeOfDayRank(t model.TimeOfDay) int {
	if r, ok := todRank[t]; ok {
		return r
	}
	return todRank[model.TimeUnknown]
}

// sortByTimeOfDay reorders a day's scenes in place for shooting
// continuity. The sort is stable within a bucket.
func sortByTimeOfDay(scenes []model.Scene) {
	sort.SliceStable(scenes, func(i, j int) bool {
		return timeOfDayRank(scenes[i].TimeOfDay) < timeOfDayRank(scenes[j].TimeOfDay)
	})
}
