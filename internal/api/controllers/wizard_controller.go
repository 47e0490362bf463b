package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripdoc/internal/models/request_models"
	"tripdoc/internal/models/response_models"
	"tripdoc/internal/services"
	"tripdoc/internal/wizard"
	"tripdoc/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

func sessionResponse(session *wizard.Session) response_models.SessionResponse {
	resp := response_models.SessionResponse{
		ID:            session.ID,
		Step:          string(session.Step),
		Lang:          session.Lang,
		Draft:         session.Draft,
		StageError:    session.StageError,
		Selections:    session.Selections,
		Introductions: session.Introductions,
	}
	if session.Step == wizard.StepImages && session.Candidates != nil {
		resp.Candidates = session.Candidates
		resp.MissingImages = services.NamesWithoutCandidates(session.Candidates)
	}
	return resp
}

// CreateSession godoc
// @Summary Start a wizard session
// @Description Creates a new session on the form step with a blank one-day draft
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.CreateSessionRequest false "Session language"
// @Success 200 {object} response_models.SessionResponse
// @Router /wizard/sessions [post]
func (w *WizardController) CreateSession(c *gin.Context) {
	var req request_models.CreateSessionRequest
	_ = c.ShouldBindJSON(&req)

	session, err := w.wizardService.CreateSession(req.Lang)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Session created")
}

func (w *WizardController) GetSession(c *gin.Context) {
	session, err := w.wizardService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Session fetched")
}

func (w *WizardController) AddDay(c *gin.Context) {
	session, err := w.wizardService.AddDay(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Day added")
}

func (w *WizardController) RemoveDay(c *gin.Context) {
	dayIndex, ok := pathIndex(c, "dayIndex")
	if !ok {
		return
	}
	session, err := w.wizardService.RemoveDay(c.Param("sessionId"), dayIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Day removed")
}

func (w *WizardController) AddLocation(c *gin.Context) {
	dayIndex, ok := pathIndex(c, "dayIndex")
	if !ok {
		return
	}
	session, err := w.wizardService.AddLocation(c.Param("sessionId"), dayIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Location added")
}

func (w *WizardController) RemoveLocation(c *gin.Context) {
	dayIndex, ok := pathIndex(c, "dayIndex")
	if !ok {
		return
	}
	locationIndex, ok := pathIndex(c, "locationIndex")
	if !ok {
		return
	}
	session, err := w.wizardService.RemoveLocation(c.Param("sessionId"), dayIndex, locationIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Location removed")
}

// UpdateLocationField sets one field (name, time or placeId) of one location.
func (w *WizardController) UpdateLocationField(c *gin.Context) {
	dayIndex, ok := pathIndex(c, "dayIndex")
	if !ok {
		return
	}
	locationIndex, ok := pathIndex(c, "locationIndex")
	if !ok {
		return
	}
	var req request_models.LocationFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Field is required")
		return
	}
	session, err := w.wizardService.SetLocationField(c.Param("sessionId"), dayIndex, locationIndex, req.Field, req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Location updated")
}

// Submit godoc
// @Summary Advance the wizard one step
// @Description Moves to the next step and runs its automatic batch pass (image search or introduction generation)
// @Tags Wizard
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response_models.SessionResponse
// @Failure 502 {object} utils.APIResponse
// @Router /wizard/sessions/{sessionId}/submit [post]
func (w *WizardController) Submit(c *gin.Context) {
	session, err := w.wizardService.Submit(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Step submitted")
}

func (w *WizardController) Back(c *gin.Context) {
	session, err := w.wizardService.Back(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Moved back")
}

func (w *WizardController) Reset(c *gin.Context) {
	session, err := w.wizardService.Reset(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Back to form")
}

func (w *WizardController) Retry(c *gin.Context) {
	session, err := w.wizardService.Retry(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Batch re-issued")
}

func (w *WizardController) SelectImage(c *gin.Context) {
	var req request_models.SelectImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Location and url are required")
		return
	}
	session, err := w.wizardService.SelectImage(c.Param("sessionId"), req.Location, req.URL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Image selected")
}

func (w *WizardController) EditIntroduction(c *gin.Context) {
	var req request_models.EditIntroductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Location is required")
		return
	}
	session, err := w.wizardService.EditIntroduction(c.Param("sessionId"), req.Location, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessionResponse(session), "Introduction updated")
}

func pathIndex(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return value, true
}
