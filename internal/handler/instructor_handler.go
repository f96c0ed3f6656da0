package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/response"
	"github.com/sumaiya48/summer-camp-server/internal/service"
)

// InstructorHandler serves the public instructor listing.
type InstructorHandler struct {
	instructorService *service.InstructorService
}

// NewInstructorHandler creates a new InstructorHandler.
func NewInstructorHandler(instructorService *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// List godoc
// GET /instructors?limit=N
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.instructorService.List(c.Request.Context(), parseLimit(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, instructors)
}
