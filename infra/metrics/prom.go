package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/cloudywalnut/ai-production-scheduler/core/metrics"
	"github.com/cloudywalnut/ai-production-scheduler/core/model"
)

// PromSink records extraction and scheduling outcomes in Prometheus
// metrics.
type PromSink struct {
	scenes   prometheus.Counter
	failures prometheus.Counter
	dayHours prometheus.Histogram
	days     prometheus.Gauge
}

// NewPromSink registers the metrics on the default Prometheus registerer.
// The Prometheus server is started separately on the configured port.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	scenes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "scenes_extracted_total",
		Help: "Total number of scenes returned by the extraction service",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "extraction_failures_total",
		Help: "Total number of document fragments whose extraction failed",
	})
	dayHours := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_day_hours",
		Help:    "Distribution of packed hours per shooting day",
		Buckets: []float64{2, 4, 6, 8, 10, 12, 14, 16},
	})
	days := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_days_total",
		Help: "Number of shooting days in the last computed schedule",
	})

	collectors := []prometheus.Collector{scenes, failures, dayHours, days}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			collectors[i] = are.ExistingCollector
		}
	}
	return &PromSink{
		scenes:   collectors[0].(prometheus.Counter),
		failures: collectors[1].(prometheus.Counter),
		dayHours: collectors[2].(prometheus.Histogram),
		days:     collectors[3].(prometheus.Gauge),
	}, nil
}

// RecordExtraction counts extracted scenes and failed fragments.
func (s *PromSink) RecordExtraction(fragments, scenes, failures int) error {
	s.scenes.Add(float64(scenes))
	s.failures.Add(float64(failures))
	return nil
}

// RecordSchedule observes the per-day load and the day count.
func (s *PromSink) RecordSchedule(days []model.Day) error {
	for _, d := range days {
		s.dayHours.Observe(d.TotalHours)
	}
	s.days.Set(float64(len(days)))
	return nil
}
