package handlers

import (
	"net/http"

	"github.com/epeers/estateplan/internal/models"
	"github.com/epeers/estateplan/internal/services"
	"github.com/gin-gonic/gin"
)

// PlanHandler handles heirs, the fiduciary pool, estate plans and their validation
type PlanHandler struct {
	clientSvc     *services.ClientService
	validationSvc *services.ValidationService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(clientSvc *services.ClientService, validationSvc *services.ValidationService) *PlanHandler {
	return &PlanHandler{
		clientSvc:     clientSvc,
		validationSvc: validationSvc,
	}
}

// PutHeirs handles PUT /clients/:id/heirs
// @Summary Replace a client's heirs
// @Description Store the client and spouse heir lists plus manual pool entries and return the resolved fiduciary pool
// @Tags estate-plan
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.HeirLists true "Heir lists"
// @Success 200 {array} models.FiduciaryPoolMember
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/heirs [put]
func (h *PlanHandler) PutHeirs(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}
	advisorID, ok := requireAdvisor(c)
	if !ok {
		return
	}

	var heirs models.HeirLists
	if err := c.ShouldBindJSON(&heirs); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	pool, err := h.clientSvc.SaveHeirs(c.Request.Context(), id, advisorID, heirs)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pool)
}

// GetFiduciaryPool handles GET /clients/:id/fiduciary-pool
// @Summary Get a client's fiduciary pool
// @Description Client heirs first, then spouse heirs, then manual entries, deduplicated by id
// @Tags estate-plan
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {array} models.FiduciaryPoolMember
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/fiduciary-pool [get]
func (h *PlanHandler) GetFiduciaryPool(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}

	pool, err := h.clientSvc.GetFiduciaryPool(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pool)
}

// PutEstatePlan handles PUT /clients/:id/estate-plan
// @Summary Replace a client's estate plan
// @Tags estate-plan
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.EstatePlan true "Wills, trusts and fiduciary pool"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/estate-plan [put]
func (h *PlanHandler) PutEstatePlan(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}
	advisorID, ok := requireAdvisor(c)
	if !ok {
		return
	}

	var plan models.EstatePlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	if err := h.clientSvc.SavePlan(c.Request.Context(), id, advisorID, plan); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "estate plan saved"})
}

// GetValidation handles GET /clients/:id/validation
// @Summary Validate a client's estate plan
// @Description Cross-check will provisions against the assets' beneficiary designations
// @Tags estate-plan
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.ValidationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/validation [get]
func (h *PlanHandler) GetValidation(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}

	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	result, cached, err := h.validationSvc.ValidateClient(warnCtx, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ValidationResponse{
		Meta:       newMeta(cached),
		Validation: result,
		Warnings:   wc.GetWarnings(),
	})
}

// PreviewValidation handles POST /validation/preview
// @Summary Validate an estate plan without storing it
// @Tags estate-plan
// @Accept json
// @Produce json
// @Param request body models.ValidationPreviewRequest true "Plan, assets and heirs"
// @Success 200 {object} models.ValidationResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /validation/preview [post]
func (h *PlanHandler) PreviewValidation(c *gin.Context) {
	var req models.ValidationPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	warnCtx, wc := services.NewWarningContext(c.Request.Context())
	result := h.validationSvc.PreviewValidation(warnCtx, &req)

	c.JSON(http.StatusOK, models.ValidationResponse{
		Meta:       newMeta(false),
		Validation: result,
		Warnings:   wc.GetWarnings(),
	})
}
