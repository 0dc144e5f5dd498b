package scheduler

import (
	"github.com/cloudywalnut/ai-production-scheduler/core/events"
	"github.com/cloudywalnut/ai-production-scheduler/core/logger"
	"github.com/cloudywalnut/ai-production-scheduler/core/model"
	"github.com/cloudywalnut/ai-production-scheduler/internal/eventbus"
)

// Packer fills shooting days from ranked location groups. It owns a
// working copy of the scene list for the duration of a call and never
// mutates the caller's scenes.
type Packer struct {
	cfg     Config
	orderer SceneOrderer
	bus     eventbus.EventBus
	log     logger.Logger
}

// NewPacker validates the configuration and builds a packer. The bus is
// optional; events are dropped when it is nil.
func NewPacker(cfg Config, bus eventbus.EventBus, log logger.Logger) (*Packer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	orderer, err := NewOrderer(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Packer{cfg: cfg, orderer: orderer, bus: bus, log: log}, nil
}

// Schedule packs every scene into a day and returns the days in shooting
// order, numbered from 1. An empty input yields an empty schedule.
//
// Every input scene lands in exactly one day. Days respect the budget
// except when forced inclusion places the last pending scene of a
// location over it; with StrictBudget a scene larger than the whole
// budget is still emitted, alone on its own day, rather than dropped.
func (p *Packer) Schedule(scenes []model.Scene) []model.Day {
	work := make([]model.Scene, len(scenes))
	copy(work, scenes)
	for i := range work {
		work[i].Normalize()
	}

	groups := groupScenes(work)
	remaining := len(work)

	var days []model.Day
	for remaining > 0 {
		day := model.Day{Number: len(days) + 1}
		touched := make(map[string]bool)
		for p.pass(groups, &day, touched, &remaining) > 0 {
		}
		if len(day.Scenes) == 0 {
			p.forceSeed(groups, &day, touched, &remaining)
		}
		sortByTimeOfDay(day.Scenes)
		days = append(days, day)
		p.log.Debugw("day packed", map[string]any{
			"day":    day.Number,
			"scenes": len(day.Scenes),
			"hours":  day.TotalHours,
		})
		if p.bus != nil {
			p.bus.Publish(events.DayPacked{Day: day.Number, Scenes: len(day.Scenes), Hours: day.TotalHours})
		}
	}
	if p.bus != nil {
		p.bus.Publish(events.ScheduleComplete{Days: len(days), Scenes: len(work)})
	}
	return days
}

// pass walks the locations in ranked order once and returns the number of
// scenes placed. The pack-up guard skips a location the day has not
// touched yet when too little budget remains to justify relocating the
// crew; a location already being drained continues.
func (p *Packer) pass(groups []*locationGroup, day *model.Day, touched map[string]bool, remaining *int) int {
	placed := 0
	for _, g := range rankGroups(groups) {
		if !touched[g.name] && p.cfg.DayBudgetHours-day.TotalHours <= p.cfg.RelocationFloorHours {
			continue
		}
		placed += p.drain(g, day, touched, remaining)
	}
	return placed
}

// drain attempts the location's scenes in strategy order. A scene is
// placed when it fits the remaining budget, or when it is the last
// pending scene at its location and forced inclusion is enabled: leaving
// a one-scene residue behind would starve against the relocation guard,
// so the overshoot is accepted.
func (p *Packer) drain(g *locationGroup, day *model.Day, touched map[string]bool, remaining *int) int {
	order := p.orderer.Order(g.scenes, day.Scenes)
	taken := make(map[int]bool)
	pending := len(g.scenes)
	placed := 0
	for _, idx := range order {
		sc := g.scenes[idx]
		fits := day.TotalHours+sc.EstimatedHours <= p.cfg.DayBudgetHours
		forced := !p.cfg.StrictBudget && pending == 1
		if !fits && !forced {
			continue
		}
		if !fits {
			p.log.Debugf("forcing last scene %d at %q onto day %d (%.2fh over budget)",
				sc.SceneNumber, g.name, day.Number, day.TotalHours+sc.EstimatedHours-p.cfg.DayBudgetHours)
		}
		day.Scenes = append(day.Scenes, sc)
		day.TotalHours += sc.EstimatedHours
		taken[idx] = true
		touched[g.name] = true
		pending--
		placed++
		*remaining--
	}
	g.remove(taken)
	return placed
}

// forceSeed places the first scene of the top-ranked location regardless
// of budget. It only runs when a full day produced nothing, which happens
// when the guard blocks every location on a fresh day or a strict-budget
// scene exceeds the whole budget; without it the loop could not make
// progress.
func (p *Packer) forceSeed(groups []*locationGroup, day *model.Day, touched map[string]bool, remaining *int) {
	ranked := rankGroups(groups)
	if len(ranked) == 0 {
		return
	}
	g := ranked[0]
	idx := p.orderer.Order(g.scenes, day.Scenes)[0]
	sc := g.scenes[idx]
	day.Scenes = append(day.Scenes, sc)
	day.TotalHours += sc.EstimatedHours
	g.remove(map[int]bool{idx: true})
	touched[g.name] = true
	*remaining--
	p.log.Warnf("scene %d at %q could not be packed within budget %.2f; scheduled alone on day %d",
		sc.SceneNumber, g.name, p.cfg.DayBudgetHours, day.Number)
}

// Schedule is a convenience wrapper building a one-shot packer.
func Schedule(cfg Config, scenes []model.Scene, log logger.Logger) ([]model.Day, error) {
	p, err := NewPacker(cfg, nil, log)
	if err != nil {
		return nil, err
	}
	return p.Schedule(scenes), nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
