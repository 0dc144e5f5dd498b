package scheduler

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

// Summary aggregates per-day load figures for a finished schedule.
type Summary struct {
	Days        int     `json:"days"`
	Scenes      int     `json:"scenes"`
	TotalHours  float64 `json:"total_hours"`
	MeanHours   float64 `json:"mean_hours"`
	StdDevHours float64 `json:"stddev_hours"`
	// Utilization is the mean day load relative to the budget.
	Utilization float64 `json:"utilization"`
	// Overruns counts days exceeding the budget via forced inclusion.
	Overruns int `json:"overruns"`
}

// Summarize computes load statistics for a schedule against the budget it
// was packed with.
func Summarize(days []model.Day, budget float64) Summary {
	s := Summary{Days: len(days)}
	if len(days) == 0 {
		return s
	}
	hours := make([]float64, len(days))
	for i, d := range days {
		hours[i] = d.TotalHours
		s.TotalHours += d.TotalHours
		s.Scenes += len(d.Scenes)
		if d.TotalHours > budget {
			s.Overruns++
		}
	}
	s.MeanHours = stat.Mean(hours, nil)
	if len(hours) > 1 {
		s.StdDevHours = stat.StdDev(hours, nil)
	}
	if budget > 0 {
		s.Utilization = s.MeanHours / budget
	}
	return s
}
