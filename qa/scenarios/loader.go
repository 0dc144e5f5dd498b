package scenarios

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
	"github.com/cloudywalnut/ai-production-scheduler/core/scheduler"
)

type SceneDef struct {
	Number       int      `yaml:"number"`
	Location     string   `yaml:"location"`
	SubLocation  string   `yaml:"sub_location,omitempty"`
	LocationType string   `yaml:"location_type,omitempty"`
	TimeOfDay    string   `yaml:"time_of_day,omitempty"`
	Hours        float64  `yaml:"hours"`
	Characters   []string `yaml:"characters,omitempty"`
}

func (d SceneDef) ToModel() model.Scene {
	return model.Scene{
		SceneNumber:     d.Number,
		LocationName:    d.Location,
		SubLocationName: d.SubLocation,
		LocationType:    model.ParseLocationType(d.LocationType),
		TimeOfDay:       model.ParseTimeOfDay(d.TimeOfDay),
		EstimatedHours:  d.Hours,
		Characters:      d.Characters,
	}
}

type Expected struct {
	Days      int       `yaml:"days"`
	DayHours  []float64 `yaml:"day_hours,omitempty"`
	DayScenes [][]int   `yaml:"day_scenes,omitempty"`
}

type Scenario struct {
	Name            string     `yaml:"name"`
	Description     string     `yaml:"description,omitempty"`
	Budget          float64    `yaml:"budget"`
	Strategy        string     `yaml:"strategy,omitempty"`
	Strict          bool       `yaml:"strict,omitempty"`
	RelocationFloor float64    `yaml:"relocation_floor,omitempty"`
	Scenes          []SceneDef `yaml:"scenes"`
	Expected        Expected   `yaml:"expected"`
}

// Config turns the scenario knobs into a scheduler configuration,
// falling back to the defaults for anything left unset.
func (sc *Scenario) Config() scheduler.Config {
	cfg := scheduler.DefaultConfig()
	if sc.Budget > 0 {
		cfg.DayBudgetHours = sc.Budget
	}
	if sc.Strategy != "" {
		cfg.Strategy = sc.Strategy
	}
	if sc.RelocationFloor > 0 {
		cfg.RelocationFloorHours = sc.RelocationFloor
	}
	cfg.StrictBudget = sc.Strict
	return cfg
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
