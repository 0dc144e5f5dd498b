package scenarios

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob("*.yaml")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files found")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestScenarioConfigDefaults(t *testing.T) {
	sc := &Scenario{Budget: 8}
	cfg := sc.Config()
	if cfg.DayBudgetHours != 8 {
		t.Fatalf("budget = %v", cfg.DayBudgetHours)
	}
	if cfg.Strategy != "location" {
		t.Fatalf("strategy = %q", cfg.Strategy)
	}
	if cfg.RelocationFloorHours != 4 {
		t.Fatalf("relocation floor = %v", cfg.RelocationFloorHours)
	}
	if cfg.StrictBudget {
		t.Fatal("strict should default off")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	tmp, err := os.CreateTemp(t.TempDir(), "bad*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(":"); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp.Name()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
