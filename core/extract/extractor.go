// Package extract defines the boundary with the external scene
// extraction service. The scheduler only ever sees the Extractor
// interface; the OpenAI-backed implementation lives in infra/extract.
package extract

import (
	"context"

	"github.com/cloudywalnut/ai-production-scheduler/core/events"
	"github.com/cloudywalnut/ai-production-scheduler/core/logger"
	"github.com/cloudywalnut/ai-production-scheduler/core/model"
	"github.com/cloudywalnut/ai-production-scheduler/internal/eventbus"
)

// Extractor turns one raw document fragment into an ordered scene list.
type Extractor interface {
	Extract(ctx context.Context, fragment []byte) ([]model.Scene, error)
}

// ExtractAll runs the extractor over each fragment in order and
// concatenates the results. A fragment that fails contributes an empty
// scene list and a warning instead of failing the whole request, so a
// partial extraction surfaces only as a smaller scene count. The second
// return value is the number of failed fragments.
//
// Scene numbers are not de-duplicated across fragments: a split document
// can legally repeat them.
func ExtractAll(ctx context.Context, ex Extractor, fragments [][]byte, bus eventbus.EventBus, log logger.Logger) ([]model.Scene, int) {
	if log == nil {
		log = nopLogger{}
	}
	var scenes []model.Scene
	failures := 0
	for i, frag := range fragments {
		batch, err := ex.Extract(ctx, frag)
		if err != nil {
			failures++
			log.Warnf("fragment %d/%d: extraction failed, continuing without it: %v", i+1, len(fragments), err)
			if bus != nil {
				bus.Publish(events.FragmentExtracted{Fragment: i + 1, Err: err})
			}
			continue
		}
		log.Debugf("fragment %d/%d: %d scenes", i+1, len(fragments), len(batch))
		if bus != nil {
			bus.Publish(events.FragmentExtracted{Fragment: i + 1, Scenes: len(batch)})
		}
		scenes = append(scenes, batch...)
	}
	return scenes, failures
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
