// Package app wires the configuration into a runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cloudywalnut/ai-production-scheduler/api/schedule"
	"github.com/cloudywalnut/ai-production-scheduler/config"
	"github.com/cloudywalnut/ai-production-scheduler/core/events"
	coremetrics "github.com/cloudywalnut/ai-production-scheduler/core/metrics"
	"github.com/cloudywalnut/ai-production-scheduler/infra/extract"
	"github.com/cloudywalnut/ai-production-scheduler/infra/logger"
	"github.com/cloudywalnut/ai-production-scheduler/infra/metrics"
	"github.com/cloudywalnut/ai-production-scheduler/infra/splitter"
	"github.com/cloudywalnut/ai-production-scheduler/internal/eventbus"
)

// Service hosts the scheduling API and its collaborators.
type Service struct {
	handler     *schedule.Handler
	bus         eventbus.EventBus
	log         logger.Logger
	addr        string
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.SetLevel(cfg.Logging.Level)
	logg := logger.New("service")

	extractor, err := extract.New(cfg.Extractor, logger.New("extractor"))
	if err != nil {
		return nil, fmt.Errorf("extractor client: %w", err)
	}
	split, err := splitter.New(cfg.Splitter, logger.New("splitter"))
	if err != nil {
		return nil, fmt.Errorf("splitter: %w", err)
	}

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		promSink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = promSink
	}

	bus := eventbus.New()
	handler := schedule.New(split, extractor, cfg.Scheduler, sink, bus, logg, int64(cfg.Server.MaxBodyMB)<<20)

	svc := &Service{
		handler:     handler,
		bus:         bus,
		log:         logg,
		addr:        cfg.Server.Address,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}
	go svc.logEvents(bus.Subscribe())
	return svc, nil
}

// Run serves the API until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.addr, Handler: s.handler.Routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()
	s.log.Infof("listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// logEvents mirrors bus events into the service log.
func (s *Service) logEvents(sub <-chan eventbus.Event) {
	for e := range sub {
		switch ev := e.(type) {
		case events.FragmentExtracted:
			if ev.Err != nil {
				s.log.Warnf("fragment %d failed: %v", ev.Fragment, ev.Err)
			}
		case events.DayPacked:
			s.log.Debugw("day packed", map[string]any{"day": ev.Day, "scenes": ev.Scenes, "hours": ev.Hours})
		case events.ScheduleComplete:
			s.log.Infof("schedule complete: %d scenes over %d days", ev.Scenes, ev.Days)
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
