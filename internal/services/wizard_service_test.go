package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdoc/internal/models/trip_models"
	"tripdoc/internal/wizard"
	"tripdoc/pkg/utils"
)

func newTestWizard(searcher *fakeSearcher, generator *fakeGenerator) WizardServiceInterface {
	return NewWizardService(
		wizard.NewMemoryStore(time.Minute),
		NewImageService(searcher),
		NewIntroductionService(generator),
	)
}

func TestCreateSessionDefaults(t *testing.T) {
	svc := newTestWizard(&fakeSearcher{}, &fakeGenerator{})

	session, err := svc.CreateSession("")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, wizard.StepForm, session.Step)
	assert.Equal(t, "zh", session.Lang)
	require.Len(t, session.Draft.Days, 1)

	_, err = svc.GetSession("nope")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestDraftEditsOnlyOnFormStep(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]string{"Tokyo Tower": {"u1"}}}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, err := svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), session.ID)
	require.NoError(t, err)

	_, err = svc.AddDay(session.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidStep)
}

// One location, one search, one pick.
func TestImageStageFlow(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]string{"Tokyo Tower": {"u1", "u2"}}}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, err := svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")
	require.NoError(t, err)
	_, err = svc.SetLocationField(session.ID, 0, 0, trip_models.FieldTime, "09:00")
	require.NoError(t, err)

	session, err = svc.Submit(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepImages, session.Step)
	assert.Equal(t, []string{"Tokyo Tower"}, searcher.queries)
	assert.Equal(t, []string{"u1", "u2"}, session.Candidates["Tokyo Tower"])

	session, err = svc.SelectImage(session.ID, "Tokyo Tower", "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.Selections["Tokyo Tower"])

	session, err = svc.Submit(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepIntroductions, session.Step)
	assert.Equal(t, map[string]string{"Tokyo Tower": "u1"}, session.Draft.Images)
}

func TestSelectImageValidation(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]string{"Tokyo Tower": {"u1"}}}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, _ = svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")

	_, err := svc.SelectImage(session.ID, "Tokyo Tower", "u1")
	assert.ErrorIs(t, err, utils.ErrInvalidStep)

	_, _ = svc.Submit(context.Background(), session.ID)
	_, err = svc.SelectImage(session.ID, "Nowhere", "u1")
	assert.ErrorIs(t, err, utils.ErrLocationNotFound)
	_, err = svc.SelectImage(session.ID, "Tokyo Tower", "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestIntroductionStageFlow(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]string{"Tokyo Tower": {"u1"}}}
	generator := &fakeGenerator{texts: map[string]string{"Tokyo Tower": "generated"}}
	svc := newTestWizard(searcher, generator)

	session, _ := svc.CreateSession("en")
	_, _ = svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")
	_, _ = svc.Submit(context.Background(), session.ID)
	session, err := svc.Submit(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepIntroductions, session.Step)
	assert.Equal(t, "generated", session.Introductions["Tokyo Tower"])

	session, err = svc.EditIntroduction(session.ID, "Tokyo Tower", "my own words")
	require.NoError(t, err)

	session, err = svc.Submit(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepMap, session.Step)
	assert.Equal(t, "my own words", session.Draft.Introductions["Tokyo Tower"])

	_, err = svc.Submit(context.Background(), session.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidStep, "map is a dead end")
}

func TestBackFromMapKeepsEnrichment(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]string{"Tokyo Tower": {"u1"}}}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, _ = svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")
	_, _ = svc.Submit(context.Background(), session.ID)
	_, _ = svc.SelectImage(session.ID, "Tokyo Tower", "u1")
	_, _ = svc.Submit(context.Background(), session.ID)
	session, err := svc.Submit(context.Background(), session.ID)
	require.NoError(t, err)
	require.Equal(t, wizard.StepMap, session.Step)

	session, err = svc.Back(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepIntroductions, session.Step)
	assert.NotEmpty(t, session.Draft.Images, "images merged earlier survive back")
	assert.NotEmpty(t, session.Draft.Introductions, "introductions merged earlier survive back")
}

func TestBackIntoImagesReplacesSelections(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]string{"Tokyo Tower": {"u1", "u2"}}}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, _ = svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")
	_, _ = svc.Submit(context.Background(), session.ID)
	_, _ = svc.SelectImage(session.ID, "Tokyo Tower", "u2")
	_, _ = svc.Submit(context.Background(), session.ID)

	session, err := svc.Back(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepImages, session.Step)
	assert.Empty(t, session.Selections, "re-entering the stage re-runs the batch and drops prior picks")
	assert.Len(t, searcher.queries, 2, "the batch was re-issued")
}

func TestBackOnFormIsNoop(t *testing.T) {
	svc := newTestWizard(&fakeSearcher{}, &fakeGenerator{})
	session, _ := svc.CreateSession("en")

	session, err := svc.Back(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepForm, session.Step)
}

func TestResetKeepsDraft(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]string{"Tokyo Tower": {"u1"}}}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, _ = svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")
	_, _ = svc.Submit(context.Background(), session.ID)

	session, err := svc.Reset(session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepForm, session.Step)
	assert.Equal(t, "Tokyo Tower", session.Draft.Days[0].Locations[0].Name)
}

func TestBatchFailureIsRetryable(t *testing.T) {
	searcher := &fakeSearcher{failAll: utils.ErrImageSearchUnavailable}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, _ = svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")

	_, err := svc.Submit(context.Background(), session.ID)
	require.ErrorIs(t, err, utils.ErrImageSearchUnavailable)

	session, err = svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepImages, session.Step, "failure does not advance past the stage")
	assert.NotEmpty(t, session.StageError)

	// Provider recovers; an explicit retry re-issues the whole batch.
	searcher.failAll = nil
	searcher.results = map[string][]string{"Tokyo Tower": {"u1"}}

	session, err = svc.Retry(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, session.StageError)
	assert.Equal(t, []string{"u1"}, session.Candidates["Tokyo Tower"])
}

// A client polls the session while a slow image batch runs; both sides must
// work on private copies, so run this under the race detector.
func TestPollingDuringSlowSubmit(t *testing.T) {
	searcher := &fakeSearcher{
		results: map[string][]string{"Tokyo Tower": {"u1"}},
		delay:   30 * time.Millisecond,
	}
	svc := newTestWizard(searcher, &fakeGenerator{})

	session, _ := svc.CreateSession("en")
	_, err := svc.SetLocationField(session.ID, 0, 0, trip_models.FieldName, "Tokyo Tower")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), session.ID)
		done <- err
	}()

	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			got, err := svc.GetSession(session.ID)
			require.NoError(t, err)
			assert.Equal(t, wizard.StepImages, got.Step)
			assert.Equal(t, []string{"u1"}, got.Candidates["Tokyo Tower"])
			return
		default:
			_, err := svc.GetSession(session.ID)
			require.NoError(t, err)
			time.Sleep(time.Millisecond)
		}
	}
}

func TestRetryOutsideEnrichmentSteps(t *testing.T) {
	svc := newTestWizard(&fakeSearcher{}, &fakeGenerator{})
	session, _ := svc.CreateSession("en")

	_, err := svc.Retry(context.Background(), session.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidStep)
}

func TestDocumentOverrideStored(t *testing.T) {
	svc := newTestWizard(&fakeSearcher{}, &fakeGenerator{})
	session, _ := svc.CreateSession("en")

	session, err := svc.SetDocumentOverride(session.ID, "# My edited doc")
	require.NoError(t, err)
	assert.Equal(t, "# My edited doc", session.Markdown)
}
