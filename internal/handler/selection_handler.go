package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/response"
	"github.com/sumaiya48/summer-camp-server/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectionHandler handles enrollment intents.
type SelectionHandler struct {
	selectionService *service.SelectionService
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(selectionService *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{selectionService: selectionService}
}

// Create godoc
// POST /classes/selected
// Records a student's intent to enroll.
func (h *SelectionHandler) Create(c *gin.Context) {
	var selection model.Selection
	if err := c.ShouldBindJSON(&selection); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	ack, err := h.selectionService.Create(c.Request.Context(), &selection)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// ListByEmail godoc
// GET /classes/selected?email=...
// Selections for a user email, exact match.
func (h *SelectionHandler) ListByEmail(c *gin.Context) {
	selections, err := h.selectionService.ListByUserEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, selections)
}

// Delete godoc
// DELETE /classes/selected/:id
// Cancels a selection; a missing id acknowledges zero deletions.
func (h *SelectionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ack, err := h.selectionService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}
