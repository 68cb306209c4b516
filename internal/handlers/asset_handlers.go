package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/epeers/estateplan/internal/models"
	"github.com/epeers/estateplan/internal/services"
	"github.com/gin-gonic/gin"
)

// AssetHandler handles a client's asset document
type AssetHandler struct {
	clientSvc *services.ClientService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(clientSvc *services.ClientService) *AssetHandler {
	return &AssetHandler{
		clientSvc: clientSvc,
	}
}

// Put handles PUT /clients/:id/assets
// @Summary Replace a client's assets
// @Description Store the raw intake document, one list per asset form, and return it normalized
// @Tags assets
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.RawAssets true "Raw asset document"
// @Success 200 {object} models.NormalizedAssets
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/assets [put]
func (h *AssetHandler) Put(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}
	advisorID, ok := requireAdvisor(c)
	if !ok {
		return
	}

	var raw models.RawAssets
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	normalized, err := h.clientSvc.SaveAssets(c.Request.Context(), id, advisorID, raw)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, normalized)
}

// Get handles GET /clients/:id/assets
// @Summary Get a client's normalized assets
// @Tags assets
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.NormalizedAssets
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/assets [get]
func (h *AssetHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}

	normalized, err := h.clientSvc.GetAssets(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, normalized)
}

// Import handles POST /clients/:id/assets/import
// @Summary Import a client's assets from CSV
// @Description Replace the client's assets with the rows of a CSV upload. The file may be sent as
// @Description a multipart part named "assets" or as a text/csv request body.
// @Tags assets
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param id path int true "Client ID"
// @Param assets formData file false "Asset CSV"
// @Success 200 {object} models.ImportAssetsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id}/assets/import [post]
func (h *AssetHandler) Import(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}
	advisorID, ok := requireAdvisor(c)
	if !ok {
		return
	}

	var body io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, err := c.FormFile("assets")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "multipart upload must include an \"assets\" file",
			})
			return
		}
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: err.Error(),
			})
			return
		}
		defer f.Close()
		body = f
	}

	raw, imported, err := ParseAssetsCSV(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	normalized, err := h.clientSvc.SaveAssets(c.Request.Context(), id, advisorID, raw)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImportAssetsResponse{
		Imported: imported,
		Assets:   normalized,
	})
}
