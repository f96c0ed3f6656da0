package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/response"
	"github.com/sumaiya48/summer-camp-server/internal/service"
	"github.com/sumaiya48/summer-camp-server/internal/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassHandler handles the class resource: public listing, admin review,
// and instructor-owned CRUD.
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// ListApproved godoc
// GET /classes?limit=N
// Public listing; only approved classes ever appear here.
func (h *ClassHandler) ListApproved(c *gin.Context) {
	classes, err := h.classService.ListApproved(c.Request.Context(), parseLimit(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, classes)
}

// ListAll godoc
// GET /classes/allClasses?limit=N
// Admin view: every class regardless of review status.
func (h *ClassHandler) ListAll(c *gin.Context) {
	classes, err := h.classService.ListAll(c.Request.Context(), parseLimit(c))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, classes)
}

// UpdateStatusRequest is the payload for the admin status transition.
type UpdateStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending approved denied"`
}

// UpdateStatus godoc
// PATCH /classes/allClasses
// Transitions a class through admin review.
func (h *ClassHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}
	if _, err := primitive.ObjectIDFromHex(req.ID); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ack, err := h.classService.UpdateStatus(c.Request.Context(), req.ID, model.ClassStatus(req.Status))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// FeedbackRequest is the payload for attaching admin feedback.
type FeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

// SetFeedback godoc
// PUT /classes/feedback/:id
// Attaches admin feedback to a class.
func (h *ClassHandler) SetFeedback(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req FeedbackRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	ack, err := h.classService.SetFeedback(c.Request.Context(), id, req.Feedback)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// Create godoc
// POST /classes/addClass
// Inserts a new class owned by the posting instructor.
func (h *ClassHandler) Create(c *gin.Context) {
	var class model.Class
	if err := c.ShouldBindJSON(&class); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	ack, err := h.classService.Create(c.Request.Context(), &class)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// ListByEmail godoc
// GET /classes/instructorClasses?email=...
// Classes owned by an instructor email, exact match.
func (h *ClassHandler) ListByEmail(c *gin.Context) {
	classes, err := h.classService.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, classes)
}

// Delete godoc
// DELETE /classes/instructorClasses/:id
// Removes a class; a missing id acknowledges zero deletions.
func (h *ClassHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ack, err := h.classService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}
