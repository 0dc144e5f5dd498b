package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `extractor:
  api_key: "sk-test"
  base_url: "https://openrouter.ai/api/v1"
  model: "test-model"
splitter:
  max_pages: 8
scheduler:
  day_budget_hours: 7
  strategy: "cast"
server:
  address: ":9000"
metrics:
  prometheus_enabled: true
logging:
  level: "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"api_key", cfg.Extractor.APIKey, "sk-test"},
		{"base_url", cfg.Extractor.BaseURL, "https://openrouter.ai/api/v1"},
		{"model", cfg.Extractor.Model, "test-model"},
		{"max_pages", cfg.Splitter.MaxPages, 8},
		{"budget", cfg.Scheduler.DayBudgetHours, 7.0},
		{"strategy", cfg.Scheduler.Strategy, "cast"},
		{"address", cfg.Server.Address, ":9000"},
		{"prom_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"log_level", cfg.Logging.Level, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoad_SchedulerDefaults(t *testing.T) {
	path := writeConfig(t, "extractor:\n  api_key: \"sk\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Scheduler.DayBudgetHours != 12 {
		t.Errorf("default budget = %v, want 12", cfg.Scheduler.DayBudgetHours)
	}
	if cfg.Scheduler.Strategy != "location" {
		t.Errorf("default strategy = %q, want location", cfg.Scheduler.Strategy)
	}
	if cfg.Scheduler.RelocationFloorHours != 4 {
		t.Errorf("default relocation floor = %v, want 4", cfg.Scheduler.RelocationFloorHours)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("default address = %q, want :8080", cfg.Server.Address)
	}
}

func TestLoad_RejectsZeroBudget(t *testing.T) {
	path := writeConfig(t, "scheduler:\n  day_budget_hours: 0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for explicit zero budget")
	}
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PS_SCHEDULER__DAY_BUDGET_HOURS", "9")
	path := writeConfig(t, "scheduler:\n  day_budget_hours: 7\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Scheduler.DayBudgetHours != 9 {
		t.Errorf("env override ignored: budget = %v, want 9", cfg.Scheduler.DayBudgetHours)
	}
}
