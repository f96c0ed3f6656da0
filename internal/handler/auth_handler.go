package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/response"
	"github.com/sumaiya48/summer-camp-server/internal/service"
	"github.com/sumaiya48/summer-camp-server/internal/validator"
)

// AuthHandler handles credential issuance.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// IssueTokenRequest is the caller-asserted identity to sign. The server adds
// the expiry and mints nothing else.
type IssueTokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// IssueToken godoc
// POST /jwt
// Signs the posted identity claim into a time-boxed bearer token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	token, err := h.authService.IssueToken(&model.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
