package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
)

// RequireRole 必须挂在 JwtAuthMiddleware 之后
func RequireRole(roles ...music_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := Role(c)
		if !ok {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication credentials were not provided.")
			c.Abort()
			return
		}
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		controller.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to perform this action.")
		c.Abort()
	}
}
