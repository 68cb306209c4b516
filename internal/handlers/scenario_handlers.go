package handlers

import (
	"net/http"

	"github.com/epeers/estateplan/internal/models"
	"github.com/epeers/estateplan/internal/services"
	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles death-order scenario endpoints
type ScenarioHandler struct {
	scenarioSvc *services.ScenarioService
}

// NewScenarioHandler creates a new ScenarioHandler
func NewScenarioHandler(scenarioSvc *services.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioSvc: scenarioSvc,
	}
}

// Get handles GET /clients/:id/scenarios/:kind
// @Summary Run a scenario for a client
// @Description Classify every asset of a stored client for one death order: client-first, spouse-first or both-deceased
// @Tags scenarios
// @Produce json
// @Param id path int true "Client ID"
// @Param kind path string true "Scenario kind" Enums(client-first, spouse-first, both-deceased)
// @Success 200 {object} models.ScenarioResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/scenarios/{kind} [get]
func (h *ScenarioHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}
	kind, err := services.ParseScenarioKind(c.Param("kind"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	scenario, cached, err := h.scenarioSvc.GetClientScenario(warnCtx, id, kind)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ScenarioResponse{
		Meta:     newMeta(cached),
		Scenario: scenario,
		Warnings: wc.GetWarnings(),
	})
}

// Preview handles POST /scenarios/preview
// @Summary Run a scenario without storing anything
// @Tags scenarios
// @Accept json
// @Produce json
// @Param request body models.ScenarioPreviewRequest true "Scenario kind, names and raw assets"
// @Success 200 {object} models.ScenarioResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /scenarios/preview [post]
func (h *ScenarioHandler) Preview(c *gin.Context) {
	var req models.ScenarioPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}
	kind, err := services.ParseScenarioKind(string(req.Kind))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	req.Kind = kind
	if req.Assets == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "assets are required",
		})
		return
	}

	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	scenario, err := h.scenarioSvc.PreviewScenario(warnCtx, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ScenarioResponse{
		Meta:     newMeta(false),
		Scenario: scenario,
		Warnings: wc.GetWarnings(),
	})
}
