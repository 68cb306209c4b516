package handlers

import (
	"net/http"

	"github.com/epeers/estateplan/internal/models"
	"github.com/epeers/estateplan/internal/services"
	"github.com/gin-gonic/gin"
)

// UserHandler handles advisor-related endpoints
type UserHandler struct {
	clientSvc *services.ClientService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(clientSvc *services.ClientService) *UserHandler {
	return &UserHandler{
		clientSvc: clientSvc,
	}
}

// ListClients handles GET /users/:user_id/clients
// @Summary List an advisor's clients
// @Description Get all clients belonging to an advisor
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.ClientListItem
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{user_id}/clients [get]
func (h *UserHandler) ListClients(c *gin.Context) {
	userID, ok := parseID(c, "user_id", "user ID")
	if !ok {
		return
	}

	clients, err := h.clientSvc.GetAdvisorClients(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// Return empty array if no clients
	if clients == nil {
		clients = []models.ClientListItem{}
	}

	c.JSON(http.StatusOK, clients)
}
