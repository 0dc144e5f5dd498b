package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

// WriteJSON writes the shooting plan to w in JSON format.
func WriteJSON(w io.Writer, days []model.Day) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(days)
}

// WriteCSV writes the shooting plan to w as one row per scene.
func WriteCSV(w io.Writer, days []model.Day) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "scene_number", "location", "sub_location", "location_type", "time_of_day", "hours", "cast_size"}); err != nil {
		return err
	}
	for _, d := range days {
		for _, s := range d.Scenes {
			rec := []string{
				strconv.Itoa(d.Number),
				strconv.Itoa(s.SceneNumber),
				s.LocationName,
				s.SubLocationName,
				string(s.LocationType),
				string(s.TimeOfDay),
				strconv.FormatFloat(s.EstimatedHours, 'f', -1, 64),
				strconv.Itoa(s.CastSize()),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
