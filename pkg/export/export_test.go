package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

func sampleDays() []model.Day {
	return []model.Day{
		{
			Number: 1,
			Scenes: []model.Scene{
				{SceneNumber: 1, LocationName: "DINER", LocationType: model.LocationInt, TimeOfDay: model.TimeMorning, EstimatedHours: 2, Characters: []string{"ALICE", "BOB"}},
				{SceneNumber: 3, LocationName: "DINER", LocationType: model.LocationInt, TimeOfDay: model.TimeNight, EstimatedHours: 1.5, Characters: []string{"ALICE"}},
			},
			TotalHours: 3.5,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDays()); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var days []model.Day
	if err := json.Unmarshal(buf.Bytes(), &days); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(days) != 1 || len(days[0].Scenes) != 2 {
		t.Fatalf("unexpected plan: %+v", days)
	}
	if days[0].TotalHours != 3.5 {
		t.Fatalf("total hours = %v", days[0].TotalHours)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleDays()); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "day,scene_number,location") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "DINER") || !strings.Contains(lines[1], "MORNING") {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[2], "1.5") {
		t.Fatalf("unexpected second row: %s", lines[2])
	}
}
