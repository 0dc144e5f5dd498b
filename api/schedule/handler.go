// Package schedule exposes the extraction and scheduling operations over
// HTTP. The request body is the raw document; the response is JSON.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/cloudywalnut/ai-production-scheduler/core/extract"
	"github.com/cloudywalnut/ai-production-scheduler/core/logger"
	"github.com/cloudywalnut/ai-production-scheduler/core/metrics"
	"github.com/cloudywalnut/ai-production-scheduler/core/model"
	"github.com/cloudywalnut/ai-production-scheduler/core/scheduler"
	"github.com/cloudywalnut/ai-production-scheduler/internal/eventbus"
)

// Splitter partitions a document into bounded-size fragments before
// extraction.
type Splitter interface {
	Split(doc []byte) ([][]byte, error)
}

// Handler serves the extraction and scheduling endpoints.
type Handler struct {
	splitter  Splitter
	extractor extract.Extractor
	cfg       scheduler.Config
	sink      metrics.Sink
	bus       eventbus.EventBus
	log       logger.Logger
	maxBody   int64
}

// New creates a Handler. The scheduler config acts as the default; a
// request may override budget and strategy via query parameters.
func New(sp Splitter, ex extract.Extractor, cfg scheduler.Config, sink metrics.Sink, bus eventbus.EventBus, log logger.Logger, maxBodyBytes int64) *Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = 32 << 20
	}
	return &Handler{splitter: sp, extractor: ex, cfg: cfg, sink: sink, bus: bus, log: log, maxBody: maxBodyBytes}
}

// Routes returns the ServeMux with all endpoints registered.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/extract", h.handleExtract)
	mux.HandleFunc("/api/v1/schedule", h.handleSchedule)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type extractResponse struct {
	RequestID string        `json:"request_id"`
	Fragments int           `json:"fragments"`
	Scenes    []model.Scene `json:"scenes"`
}

type scheduleResponse struct {
	RequestID  string            `json:"request_id"`
	SceneCount int               `json:"scene_count"`
	Days       []model.Day       `json:"days"`
	Summary    scheduler.Summary `json:"summary"`
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	scenes, fragments, ok := h.runExtraction(w, r, reqID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, extractResponse{RequestID: reqID, Fragments: fragments, Scenes: scenes})
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	cfg, err := h.requestConfig(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	packer, err := scheduler.NewPacker(cfg, h.bus, h.log)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	scenes, _, ok := h.runExtraction(w, r, reqID)
	if !ok {
		return
	}
	days := packer.Schedule(scenes)
	if err := h.sink.RecordSchedule(days); err != nil {
		h.log.Warnf("record schedule metrics: %v", err)
	}
	h.log.Infof("request %s: scheduled %d scenes over %d days", reqID, len(scenes), len(days))
	if days == nil {
		days = []model.Day{}
	}
	writeJSON(w, http.StatusOK, scheduleResponse{
		RequestID:  reqID,
		SceneCount: len(scenes),
		Days:       days,
		Summary:    scheduler.Summarize(days, cfg.DayBudgetHours),
	})
}

// requestConfig applies query-parameter overrides to the default
// scheduling configuration. Validation happens in NewPacker.
func (h *Handler) requestConfig(r *http.Request) (scheduler.Config, error) {
	cfg := h.cfg
	if v := r.URL.Query().Get("budget"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid budget %q", v)
		}
		cfg.DayBudgetHours = f
	}
	if v := r.URL.Query().Get("strategy"); v != "" {
		cfg.Strategy = v
	}
	return cfg, nil
}

// runExtraction reads the document body, splits it and extracts scenes.
// Extraction failures are absorbed per fragment; only transport-level
// problems produce an error response.
func (h *Handler) runExtraction(w http.ResponseWriter, r *http.Request, reqID string) ([]model.Scene, int, bool) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, 0, false
	}
	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("document exceeds the %d byte limit", tooLarge.Limit))
			return nil, 0, false
		}
		httpError(w, http.StatusBadRequest, "read request body: "+err.Error())
		return nil, 0, false
	}
	if len(doc) == 0 {
		httpError(w, http.StatusBadRequest, "empty document")
		return nil, 0, false
	}

	fragments, err := h.splitter.Split(doc)
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, "split document: "+err.Error())
		return nil, 0, false
	}
	scenes, failures := extract.ExtractAll(r.Context(), h.extractor, fragments, h.bus, h.log)
	if len(scenes) == 0 {
		// ExtractAll absorbs per-fragment failures; an all-empty result
		// is still a valid (empty) schedule input.
		h.log.Warnf("request %s: no scenes extracted from %d fragments", reqID, len(fragments))
	}
	if err := h.sink.RecordExtraction(len(fragments), len(scenes), failures); err != nil {
		h.log.Warnf("record extraction metrics: %v", err)
	}
	return scenes, len(fragments), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
