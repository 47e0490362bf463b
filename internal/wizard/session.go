// Package wizard holds the step state machine and the per-session working
// state carried between wizard steps.
package wizard

import (
	"time"

	"tripdoc/internal/models/trip_models"
)

type Step string

const (
	StepForm          Step = "form"
	StepImages        Step = "images"
	StepIntroductions Step = "introductions"
	StepMap           Step = "map"
)

// Next returns the following step in the linear sequence. The map step is a
// dead end, it only goes back.
func (s Step) Next() (Step, bool) {
	switch s {
	case StepForm:
		return StepImages, true
	case StepImages:
		return StepIntroductions, true
	case StepIntroductions:
		return StepMap, true
	default:
		return s, false
	}
}

// Prev returns the preceding step. The form has none.
func (s Step) Prev() (Step, bool) {
	switch s {
	case StepImages:
		return StepForm, true
	case StepIntroductions:
		return StepImages, true
	case StepMap:
		return StepIntroductions, true
	default:
		return s, false
	}
}

// Session is one wizard run: the draft plus the current step's working
// state. Candidates/Selections/Introductions are stage-local and rebuilt on
// every stage entry; only Submit merges them into the draft.
type Session struct {
	ID    string
	Lang  string
	Step  Step
	Draft trip_models.TripData

	Candidates    map[string][]string
	Selections    map[string]string
	Introductions map[string]string

	// StageError records a retryable batch fetch failure for the current
	// step; empty means the last pass succeeded.
	StageError string

	// Markdown is the user's raw in-place edit of the projected document;
	// empty means render from the draft.
	Markdown string

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Clone deep-copies the session. The store hands out and accepts only
// copies, so two requests touching the same session never share maps or
// the draft.
func (s *Session) Clone() *Session {
	out := *s
	out.Draft = s.Draft.Clone()
	if s.Candidates != nil {
		out.Candidates = make(map[string][]string, len(s.Candidates))
		for name, urls := range s.Candidates {
			copied := make([]string, len(urls))
			copy(copied, urls)
			out.Candidates[name] = copied
		}
	}
	out.Selections = cloneStringMap(s.Selections)
	out.Introductions = cloneStringMap(s.Introductions)
	return &out
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
