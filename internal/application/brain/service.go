// Package brain drives the plan synthesizer: on demand through RunNow and
// periodically through the Scheduler.
package brain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"nous/internal/analysis"
	"nous/internal/domain"
	"nous/internal/ports"
	"nous/internal/state"
)

// Service synthesizes a plan from the current command log and dictionary
// and records it as a BrainRun.
type Service struct {
	State  *state.State
	Logger ports.Logger
}

// RunNow performs one synthesis over a consistent snapshot and records the
// result at the front of the bounded run history.
func (s *Service) RunNow() (domain.BrainRun, error) {
	if s.State == nil || s.Logger == nil {
		return domain.BrainRun{}, errors.New("brain.Service dependencies not satisfied")
	}
	view := s.State.Snapshot()
	run := domain.BrainRun{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Plan:      analysis.SynthesizePlan(view.Commands, view.Dictionary),
	}
	s.State.PushBrainRun(run)
	s.Logger.Debug("brain run recorded", map[string]interface{}{
		"id":       run.ID,
		"commands": len(view.Commands),
	})
	return run, nil
}
