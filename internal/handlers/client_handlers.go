package handlers

import (
	"net/http"

	"github.com/epeers/estateplan/internal/models"
	"github.com/epeers/estateplan/internal/services"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client CRUD endpoints
type ClientHandler struct {
	clientSvc *services.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientSvc *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientSvc: clientSvc,
	}
}

// Create handles POST /clients
// @Summary Create a client
// @Description Create a client household owned by an advisor
// @Tags clients
// @Accept json
// @Produce json
// @Param request body models.CreateClientRequest true "Client"
// @Success 201 {object} models.Client
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	client, err := h.clientSvc.CreateClient(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// Get handles GET /clients/:id
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.Client
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}

	client, err := h.clientSvc.GetClient(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// Update handles PUT /clients/:id
// @Summary Update a client
// @Description Change names or marital status. Omitted fields are kept.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body models.UpdateClientRequest true "Fields to change"
// @Success 200 {object} models.Client
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}
	advisorID, ok := requireAdvisor(c)
	if !ok {
		return
	}

	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	client, err := h.clientSvc.UpdateClient(c.Request.Context(), id, advisorID, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /clients/:id
// @Summary Delete a client
// @Description Delete a client with its assets, heirs and estate plan
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "client ID")
	if !ok {
		return
	}
	advisorID, ok := requireAdvisor(c)
	if !ok {
		return
	}

	if err := h.clientSvc.DeleteClient(c.Request.Context(), id, advisorID); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
