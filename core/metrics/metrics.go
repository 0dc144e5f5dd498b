// Package metrics defines the sink interface the service reports
// extraction and scheduling outcomes to.
package metrics

import "github.com/cloudywalnut/ai-production-scheduler/core/model"

// Config defines settings for the metrics endpoint.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9100"
	}
}

// Sink receives extraction and scheduling outcomes.
type Sink interface {
	// RecordExtraction reports one extraction run over a split document.
	RecordExtraction(fragments, scenes, failures int) error
	// RecordSchedule reports one finished schedule.
	RecordSchedule(days []model.Day) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordExtraction(int, int, int) error { return nil }
func (NopSink) RecordSchedule([]model.Day) error     { return nil }
