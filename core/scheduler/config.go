package scheduler

import "fmt"

// Strategy names accepted by Config.Strategy.
const (
	// StrategyLocation orders a location's scenes by sub-location
	// frequency and then by location-type/time-of-day class.
	StrategyLocation = "location"
	// StrategyCast orders a location's scenes to maximize cast overlap
	// with scenes already placed in the day.
	StrategyCast = "cast"
)

// Config defines scheduling parameters loaded from configuration.
type Config struct {
	// DayBudgetHours is the maximum cumulative scene estimate per
	// shooting day.
	DayBudgetHours float64 `json:"day_budget_hours"`
	// Strategy selects the intra-location ordering: "location" or "cast".
	Strategy string `json:"strategy"`
	// StrictBudget disables forced inclusion: when true, the last
	// pending scene of a location is never packed over budget. Strict
	// schedules can strand an oversize scene on a day of its own.
	StrictBudget bool `json:"strict_budget"`
	// RelocationFloorHours is the pack-up guard threshold: once the
	// remaining budget drops to this value or below, no new location is
	// opened on the current day.
	RelocationFloorHours float64 `json:"relocation_floor_hours"`
}

// DefaultConfig returns the configuration used when no overrides are set.
func DefaultConfig() Config {
	return Config{
		DayBudgetHours:       12,
		Strategy:             StrategyLocation,
		RelocationFloorHours: 4,
	}
}

// Validate checks the configuration. A non-positive budget is rejected
// outright: it would never admit a scene and the packer could not
// terminate.
func (c Config) Validate() error {
	if c.DayBudgetHours <= 0 {
		return fmt.Errorf("day_budget_hours must be positive, got %v", c.DayBudgetHours)
	}
	if c.RelocationFloorHours < 0 {
		return fmt.Errorf("relocation_floor_hours must not be negative, got %v", c.RelocationFloorHours)
	}
	if c.Strategy != StrategyLocation && c.Strategy != StrategyCast {
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	return nil
}
