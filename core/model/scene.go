package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LocationType classifies where a scene is shot relative to a set.
type LocationType string

const (
	LocationInt     LocationType = "INT"
	LocationExt     LocationType = "EXT"
	LocationIntExt  LocationType = "INT/EXT"
	LocationIE      LocationType = "I/E"
	LocationUnknown LocationType = "UNKNOWN"
)

// ParseLocationType maps free text from the extractor to a LocationType.
// Anything unrecognized becomes LocationUnknown.
func ParseLocationType(s string) LocationType {
	switch strings.ToUpper(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "."))) {
	case "INT", "INTERIOR":
		return LocationInt
	case "EXT", "EXTERIOR":
		return LocationExt
	case "INT/EXT", "INT-EXT":
		return LocationIntExt
	case "I/E":
		return LocationIE
	default:
		return LocationUnknown
	}
}

// TimeOfDay is the slugline time annotation of a scene. The extractor
// nominally emits DAY, NIGHT or UNKNOWN, but downstream sorting also
// understands MORNING and EVENING, so all five values are modelled.
type TimeOfDay string

const (
	TimeDay     TimeOfDay = "DAY"
	TimeNight   TimeOfDay = "NIGHT"
	TimeMorning TimeOfDay = "MORNING"
	TimeEvening TimeOfDay = "EVENING"
	TimeUnknown TimeOfDay = "UNKNOWN"
)

// ParseTimeOfDay maps free text to a TimeOfDay. Anything unrecognized
// becomes TimeUnknown.
func ParseTimeOfDay(s string) TimeOfDay {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DAY":
		return TimeDay
	case "NIGHT":
		return TimeNight
	case "MORNING":
		return TimeMorning
	case "EVENING":
		return TimeEvening
	default:
		return TimeUnknown
	}
}

// Scene is one screenplay scene as produced by the scene extractor.
// The scheduler treats scenes as immutable values and only reorders them.
type Scene struct {
	SceneNumber     int          `json:"scene_number"`
	SceneHeading    string       `json:"scene_heading"`
	LocationType    LocationType `json:"location_type"`
	LocationName    string       `json:"location_name"`
	SubLocationName string       `json:"sub_location_name"`
	TimeOfDay       TimeOfDay    `json:"time_of_day"`
	Characters      []string     `json:"characters"`
	Props           []string     `json:"props,omitempty"`
	Wardrobe        []string     `json:"wardrobe,omitempty"`
	SetDressing     []string     `json:"set_dressing,omitempty"`
	Vehicles        []string     `json:"vehicles,omitempty"`
	VFX             []string     `json:"vfx,omitempty"`
	SFX             []string     `json:"sfx,omitempty"`
	Stunts          []string     `json:"stunts,omitempty"`
	Extras          []string     `json:"extras,omitempty"`
	EstimatedHours  float64      `json:"estimatedTime"`
	SceneSummary    string       `json:"scene_summary,omitempty"`
}

// sceneWire mirrors Scene but keeps the fields the extractor is known to
// mangle as raw JSON so a single bad record cannot abort a whole batch.
type sceneWire struct {
	SceneNumber     json.RawMessage `json:"scene_number"`
	SceneHeading    string          `json:"scene_heading"`
	LocationType    string          `json:"location_type"`
	LocationName    string          `json:"location_name"`
	SubLocationName string          `json:"sub_location_name"`
	TimeOfDay       string          `json:"time_of_day"`
	Characters      []string        `json:"characters"`
	Props           []string        `json:"props"`
	Wardrobe        []string        `json:"wardrobe"`
	SetDressing     []string        `json:"set_dressing"`
	Vehicles        []string        `json:"vehicles"`
	VFX             []string        `json:"vfx"`
	SFX             []string        `json:"sfx"`
	Stunts          []string        `json:"stunts"`
	Extras          []string        `json:"extras"`
	EstimatedTime   json.RawMessage `json:"estimatedTime"`
	SceneSummary    string          `json:"scene_summary"`
}

// UnmarshalJSON decodes a scene record defensively: estimatedTime may
// arrive as a number, a quoted number or be missing entirely, and enum
// fields may hold arbitrary text. Malformed fields are normalized to safe
// defaults rather than rejected.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var w sceneWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = Scene{
		SceneNumber:     looseInt(w.SceneNumber),
		SceneHeading:    w.SceneHeading,
		LocationType:    ParseLocationType(w.LocationType),
		LocationName:    w.LocationName,
		SubLocationName: w.SubLocationName,
		TimeOfDay:       ParseTimeOfDay(w.TimeOfDay),
		Characters:      w.Characters,
		Props:           w.Props,
		Wardrobe:        w.Wardrobe,
		SetDressing:     w.SetDressing,
		Vehicles:        w.Vehicles,
		VFX:             w.VFX,
		SFX:             w.SFX,
		Stunts:          w.Stunts,
		Extras:          w.Extras,
		EstimatedHours:  looseFloat(w.EstimatedTime),
		SceneSummary:    w.SceneSummary,
	}
	s.Normalize()
	return nil
}

func looseFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			return f
		}
	}
	return 0
}

func looseInt(raw json.RawMessage) int {
	return int(looseFloat(raw))
}

// Normalize clamps the estimate to a non-negative finite value, folds the
// enum fields onto their known vocabulary and de-duplicates the cast list
// while preserving first appearance order.
func (s *Scene) Normalize() {
	s.LocationType = ParseLocationType(string(s.LocationType))
	s.TimeOfDay = ParseTimeOfDay(string(s.TimeOfDay))
	if math.IsNaN(s.EstimatedHours) || math.IsInf(s.EstimatedHours, 0) || s.EstimatedHours < 0 {
		s.EstimatedHours = 0
	}
	if len(s.Characters) > 1 {
		seen := make(map[string]struct{}, len(s.Characters))
		// Fresh slice: the scene may share its backing array with a
		// caller's copy, which must not see the dedup.
		out := make([]string, 0, len(s.Characters))
		for _, c := range s.Characters {
			key := strings.ToUpper(strings.TrimSpace(c))
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
		s.Characters = out
	}
}

// CastSize returns the number of distinct cast members in the scene.
func (s Scene) CastSize() int {
	return len(s.Characters)
}
