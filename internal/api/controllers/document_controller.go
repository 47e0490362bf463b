package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdoc/internal/models/request_models"
	"tripdoc/internal/models/response_models"
	"tripdoc/internal/services"
	"tripdoc/pkg/locale"
	"tripdoc/pkg/utils"
)

// requestLang resolves the prose language for one request: ?lang= wins, then
// the X-Lang header, then the session's language.
func requestLang(c *gin.Context, sessionLang string) string {
	if lang := c.Query("lang"); lang != "" {
		return locale.Normalize(lang)
	}
	if lang := c.GetHeader("X-Lang"); lang != "" {
		return locale.Normalize(lang)
	}
	return sessionLang
}

type DocumentController struct {
	documentService services.DocumentServiceInterface
	exportService   services.ExportServiceInterface
	wizardService   services.WizardServiceInterface
}

func NewDocumentController(
	documentService services.DocumentServiceInterface,
	exportService services.ExportServiceInterface,
	wizardService services.WizardServiceInterface) *DocumentController {

	return &DocumentController{
		documentService: documentService,
		exportService:   exportService,
		wizardService:   wizardService,
	}
}

// GetDocument godoc
// @Summary Projected markdown document
// @Description Renders the draft into markdown; a raw edit stored via PUT takes precedence
// @Tags Document
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param layout query string false "Layout variant" Enums(modern, classic, minimalist)
// @Success 200 {object} response_models.DocumentResponse
// @Router /wizard/sessions/{sessionId}/document [get]
func (d *DocumentController) GetDocument(c *gin.Context) {
	session, err := d.wizardService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	layout := c.DefaultQuery("layout", services.LayoutModern)
	lang := requestLang(c, session.Lang)
	resp := response_models.DocumentResponse{
		Layout: layout,
		Lang:   lang,
	}
	if session.Markdown != "" {
		resp.Markdown = session.Markdown
		resp.Edited = true
	} else {
		resp.Markdown = d.documentService.Render(session.Draft, layout, lang)
	}
	utils.RespondSuccess(c, resp, "Document rendered")
}

// UpdateDocument stores a raw markdown edit that replaces the generated
// projection until the draft changes the user's mind.
func (d *DocumentController) UpdateDocument(c *gin.Context) {
	var req request_models.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Markdown is required")
		return
	}
	session, err := d.wizardService.SetDocumentOverride(c.Param("sessionId"), req.Markdown)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.DocumentResponse{
		Layout:   services.LayoutModern,
		Lang:     session.Lang,
		Markdown: session.Markdown,
		Edited:   true,
	}, "Document updated")
}

// ExportPDF streams the composed document as the fixed-name PDF download.
func (d *DocumentController) ExportPDF(c *gin.Context) {
	session, err := d.wizardService.GetSession(c.Param("sessionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	markdown := session.Markdown
	if markdown == "" {
		layout := c.DefaultQuery("layout", services.LayoutModern)
		markdown = d.documentService.Render(session.Draft, layout, requestLang(c, session.Lang))
	}

	data, filename, err := d.exportService.BuildPDF(c.Request.Context(), markdown)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
