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

// UserHandler handles account records.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create godoc
// POST /users
// Upsert-if-absent on first sign-in. A duplicate email is acknowledged
// explicitly instead of leaving the client hanging.
func (h *UserHandler) Create(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	ack, existed, err := h.userService.CreateIfAbsent(c.Request.Context(), &user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if existed {
		response.Success(c, http.StatusOK, gin.H{
			"acknowledged": false,
			"message":      "user already exists",
		})
		return
	}
	response.Success(c, http.StatusOK, ack)
}

// List godoc
// GET /users
// Admin view of every account.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// GetRole godoc
// GET /users/role?email=...
// Role projection for an email; null when the user does not exist.
func (h *UserHandler) GetRole(c *gin.Context) {
	view, err := h.userService.GetRole(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// GetDetails godoc
// GET /users/details?email=...
// Profile projection for an email; null when the user does not exist.
func (h *UserHandler) GetDetails(c *gin.Context) {
	view, err := h.userService.GetDetails(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// UpdateRoleRequest is the payload for the admin role change.
type UpdateRoleRequest struct {
	ID   string `json:"id" binding:"required"`
	Role string `json:"role" binding:"required,oneof=student instructor admin"`
}

// UpdateRole godoc
// PATCH /users
// Sets a user's role by id.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}
	if _, err := primitive.ObjectIDFromHex(req.ID); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ack, err := h.userService.UpdateRole(c.Request.Context(), req.ID, model.Role(req.Role))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, ack)
}
