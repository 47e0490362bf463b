package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tripdoc/internal/services"
	"tripdoc/pkg/utils"
)

type MapController struct {
	mapService    services.MapServiceInterface
	wizardService services.WizardServiceInterface
}

func NewMapController(mapService services.MapServiceInterface, wizardService services.WizardServiceInterface) *MapController {
	return &MapController{
		mapService:    mapService,
		wizardService: wizardService,
	}
}

// GetMap godoc
// @Summary Map overlay for a session's draft
// @Description Geocodes every location into markers; ?day=N filters to one day and adds its driving route
// @Tags Map
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param day query int false "Day filter (1-based, omit for all days)"
// @Success 200 {object} response_models.MapViewResponse
// @Router /wizard/sessions/{sessionId}/map [get]
func (m *MapController) GetMap(c *gin.Context) {
	session, err := m.wizardService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	dayFilter := 0
	if dayStr := c.Query("day"); dayStr != "" {
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid day filter")
			return
		}
		dayFilter = day
	}

	view, err := m.mapService.BuildView(c.Request.Context(), session.Draft, dayFilter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Map built")
}

// GetLocationDetail resolves a marker label ("day-position") to the detail
// panel content for that stop.
func (m *MapController) GetLocationDetail(c *gin.Context) {
	session, err := m.wizardService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	detail, err := m.mapService.LocationDetail(session.Draft, c.Param("label"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "Location detail fetched")
}

// Suggest serves place autocomplete while the user types a location name.
func (m *MapController) Suggest(c *gin.Context) {
	partial := strings.TrimSpace(c.Query("q"))
	if partial == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}
	suggestions, err := m.mapService.Suggest(c.Request.Context(), partial)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, suggestions, "Suggestions fetched")
}
