package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumaiya48/summer-camp-server/internal/authz"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/response"
)

// RequireRole is the role gate as Gin middleware. It must run after
// RequireToken; the role is looked up from the store on every request.
func RequireRole(resolver authz.RoleResolver, required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if d := authz.CheckRole(c.Request.Context(), resolver, email, required); !d.Allowed {
			response.AbortFail(c, d.Status, d.Code)
			return
		}

		c.Next()
	}
}
