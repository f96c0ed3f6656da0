package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/authz"
	"github.com/sumaiya48/summer-camp-server/internal/response"
	"github.com/sumaiya48/summer-camp-server/internal/service"
)

// ContextKeyUserEmail is the Gin context key for the verified claim identity.
const ContextKeyUserEmail = "user_email"

// RequireToken is the credential gate as Gin middleware. A missing credential
// is 401, an invalid or expired one is 403; either way the chain aborts
// before any handler logic runs.
func RequireToken(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, d := authz.CheckCredential(c.GetHeader("Authorization"), func(token string) (string, error) {
			claims, err := authService.VerifyToken(token)
			if err != nil {
				return "", err
			}
			return claims.Email, nil
		})
		if !d.Allowed {
			response.AbortFail(c, d.Status, d.Code)
			return
		}

		c.Set(ContextKeyUserEmail, email)
		c.Next()
	}
}

// GetUserEmail retrieves the verified claim identity from the Gin context.
// Empty when the credential gate did not run.
func GetUserEmail(c *gin.Context) string {
	val, exists := c.Get(ContextKeyUserEmail)
	if !exists {
		return ""
	}
	email, ok := val.(string)
	if !ok {
		return ""
	}
	return email
}
