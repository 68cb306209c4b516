package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/epeers/estateplan/internal/middleware"
	"github.com/epeers/estateplan/internal/models"
	"github.com/epeers/estateplan/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// newMeta stamps a response with a fresh calculation id
func newMeta(cached bool) models.ResponseMeta {
	return models.ResponseMeta{
		CalculationID: uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Cached:        cached,
	}
}

// parseID reads a positive int64 path parameter, writing a 400 on failure
func parseID(c *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid " + label,
		})
		return 0, false
	}
	return id, true
}

// requireAdvisor returns the authenticated advisor, writing a 401 when there is none
func requireAdvisor(c *gin.Context) (int64, bool) {
	advisorID, ok := middleware.GetAdvisorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return 0, false
	}
	return advisorID, true
}

// writeServiceError maps service sentinels to HTTP responses
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrClientNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "client not found",
		})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "not authorized to modify this client",
		})
	case errors.Is(err, services.ErrNoAssetData):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "no_asset_data",
			Message: "no assets have been saved for this client",
		})
	case errors.Is(err, services.ErrUnknownScenario), errors.Is(err, services.ErrInvalidClient):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
	default:
		log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}
