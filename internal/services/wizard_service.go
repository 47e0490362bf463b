package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripdoc/internal/models/trip_models"
	"tripdoc/internal/wizard"
	"tripdoc/pkg/locale"
	"tripdoc/pkg/utils"
)

// WizardServiceInterface drives the four-step sequence. Draft edits are only
// valid on the form step; stage edits only on their own step. Submit carries
// the draft forward, Back never rolls it back.
type WizardServiceInterface interface {
	CreateSession(lang string) (*wizard.Session, error)
	GetSession(id string) (*wizard.Session, error)

	AddDay(id string) (*wizard.Session, error)
	RemoveDay(id string, dayIndex int) (*wizard.Session, error)
	AddLocation(id string, dayIndex int) (*wizard.Session, error)
	RemoveLocation(id string, dayIndex, locationIndex int) (*wizard.Session, error)
	SetLocationField(id string, dayIndex, locationIndex int, field, value string) (*wizard.Session, error)

	Submit(ctx context.Context, id string) (*wizard.Session, error)
	Back(ctx context.Context, id string) (*wizard.Session, error)
	Reset(id string) (*wizard.Session, error)
	Retry(ctx context.Context, id string) (*wizard.Session, error)

	SelectImage(id, locationName, imageURL string) (*wizard.Session, error)
	EditIntroduction(id, locationName, text string) (*wizard.Session, error)

	SetDocumentOverride(id, markdown string) (*wizard.Session, error)
}

type WizardService struct {
	store    wizard.Store
	imageSvc ImageServiceInterface
	introSvc IntroductionServiceInterface
}

func NewWizardService(store wizard.Store, imageSvc ImageServiceInterface, introSvc IntroductionServiceInterface) WizardServiceInterface {
	return &WizardService{
		store:    store,
		imageSvc: imageSvc,
		introSvc: introSvc,
	}
}

func (w *WizardService) CreateSession(lang string) (*wizard.Session, error) {
	session := &wizard.Session{
		ID:        uuid.New().String(),
		Lang:      locale.Normalize(lang),
		Step:      wizard.StepForm,
		Draft:     trip_models.NewDraft(),
		CreatedAt: time.Now(),
	}
	w.store.Put(session)
	return session, nil
}

func (w *WizardService) GetSession(id string) (*wizard.Session, error) {
	session, ok := w.store.Get(id)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (w *WizardService) editDraft(id string, edit func(trip_models.TripData) trip_models.TripData) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}
	if session.Step != wizard.StepForm {
		return nil, utils.ErrInvalidStep
	}
	session.Draft = edit(session.Draft)
	w.store.Put(session)
	return session, nil
}

func (w *WizardService) AddDay(id string) (*wizard.Session, error) {
	return w.editDraft(id, trip_models.AddDay)
}

func (w *WizardService) RemoveDay(id string, dayIndex int) (*wizard.Session, error) {
	return w.editDraft(id, func(d trip_models.TripData) trip_models.TripData {
		return trip_models.RemoveDay(d, dayIndex)
	})
}

func (w *WizardService) AddLocation(id string, dayIndex int) (*wizard.Session, error) {
	return w.editDraft(id, func(d trip_models.TripData) trip_models.TripData {
		return trip_models.AddLocation(d, dayIndex)
	})
}

func (w *WizardService) RemoveLocation(id string, dayIndex, locationIndex int) (*wizard.Session, error) {
	return w.editDraft(id, func(d trip_models.TripData) trip_models.TripData {
		return trip_models.RemoveLocation(d, dayIndex, locationIndex)
	})
}

func (w *WizardService) SetLocationField(id string, dayIndex, locationIndex int, field, value string) (*wizard.Session, error) {
	if field != trip_models.FieldName && field != trip_models.FieldTime && field != trip_models.FieldPlaceID {
		return nil, utils.ErrInvalidInput
	}
	return w.editDraft(id, func(d trip_models.TripData) trip_models.TripData {
		return trip_models.SetLocationField(d, dayIndex, locationIndex, field, value)
	})
}

// Submit advances one step and runs the entered stage's batch pass. On a
// batch failure the session stays on the new step with StageError set and
// the error is returned so the caller can surface retry.
func (w *WizardService) Submit(ctx context.Context, id string) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case wizard.StepForm:
		session.Step = wizard.StepImages
		err = w.runImagePass(ctx, session)
	case wizard.StepImages:
		session.Draft = trip_models.MergeImages(session.Draft, session.Selections)
		session.Step = wizard.StepIntroductions
		err = w.runIntroductionPass(ctx, session)
	case wizard.StepIntroductions:
		session.Draft = trip_models.MergeIntroductions(session.Draft, session.Introductions)
		session.Step = wizard.StepMap
		session.StageError = ""
	default:
		return nil, utils.ErrInvalidStep
	}

	w.store.Put(session)
	if err != nil {
		return session, err
	}
	return session, nil
}

// Back moves one step backward without rolling the draft back. Re-entering
// an enrichment step re-runs its batch pass, which replaces the stage's
// working candidates and selections.
func (w *WizardService) Back(ctx context.Context, id string) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}
	prev, ok := session.Step.Prev()
	if !ok {
		return session, nil
	}
	session.Step = prev
	session.StageError = ""

	switch prev {
	case wizard.StepImages:
		err = w.runImagePass(ctx, session)
	case wizard.StepIntroductions:
		err = w.runIntroductionPass(ctx, session)
	default:
		err = nil
	}

	w.store.Put(session)
	if err != nil {
		return session, err
	}
	return session, nil
}

// Reset is the header/logo jump: only the step pointer moves; the committed
// draft and its enrichment stay as they are.
func (w *WizardService) Reset(id string) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}
	session.Step = wizard.StepForm
	session.StageError = ""
	w.store.Put(session)
	return session, nil
}

// Retry re-issues the whole batch for the current enrichment step.
func (w *WizardService) Retry(ctx context.Context, id string) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}

	switch session.Step {
	case wizard.StepImages:
		err = w.runImagePass(ctx, session)
	case wizard.StepIntroductions:
		err = w.runIntroductionPass(ctx, session)
	default:
		return nil, utils.ErrInvalidStep
	}

	w.store.Put(session)
	if err != nil {
		return session, err
	}
	return session, nil
}

func (w *WizardService) SelectImage(id, locationName, imageURL string) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}
	if session.Step != wizard.StepImages {
		return nil, utils.ErrInvalidStep
	}
	if strings.TrimSpace(locationName) == "" || strings.TrimSpace(imageURL) == "" {
		return nil, utils.ErrInvalidInput
	}
	if !session.Draft.HasLocationNamed(locationName) {
		return nil, utils.ErrLocationNotFound
	}
	if session.Selections == nil {
		session.Selections = make(map[string]string)
	}
	session.Selections[locationName] = imageURL
	w.store.Put(session)
	return session, nil
}

func (w *WizardService) EditIntroduction(id, locationName, text string) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}
	if session.Step != wizard.StepIntroductions {
		return nil, utils.ErrInvalidStep
	}
	if strings.TrimSpace(locationName) == "" {
		return nil, utils.ErrInvalidInput
	}
	if !session.Draft.HasLocationNamed(locationName) {
		return nil, utils.ErrLocationNotFound
	}
	if session.Introductions == nil {
		session.Introductions = make(map[string]string)
	}
	session.Introductions[locationName] = text
	w.store.Put(session)
	return session, nil
}

func (w *WizardService) SetDocumentOverride(id, markdown string) (*wizard.Session, error) {
	session, err := w.GetSession(id)
	if err != nil {
		return nil, err
	}
	session.Markdown = markdown
	w.store.Put(session)
	return session, nil
}

// runImagePass rebuilds the image stage's working state. Prior selections
// are replaced, not merged; revisiting the stage starts the picks over.
func (w *WizardService) runImagePass(ctx context.Context, session *wizard.Session) error {
	session.Candidates = nil
	session.Selections = make(map[string]string)
	session.StageError = ""

	candidates, err := w.imageSvc.FetchCandidates(ctx, session.Draft)
	if err != nil {
		session.StageError = err.Error()
		return err
	}
	session.Candidates = candidates
	return nil
}

func (w *WizardService) runIntroductionPass(ctx context.Context, session *wizard.Session) error {
	session.Introductions = make(map[string]string)
	session.StageError = ""

	intros, err := w.introSvc.GenerateIntroductions(ctx, session.Draft, session.Lang)
	if err != nil {
		session.StageError = err.Error()
		return err
	}
	session.Introductions = intros
	return nil
}
