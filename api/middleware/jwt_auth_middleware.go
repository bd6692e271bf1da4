package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/internal/tokenutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ContextUserID = "x-user-id"
	ContextRole   = "x-user-role"
)

func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		claims, err := tokenutil.ParseAccessToken(parts[1], secret)
		if err != nil {
			message := "Invalid token."
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token has expired."
			}
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.ID)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// UserID 取认证中间件写入的用户 id
func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

func Role(c *gin.Context) (music_models.Role, bool) {
	v, ok := c.Get(ContextRole)
	if !ok {
		return 0, false
	}
	role, ok := v.(music_models.Role)
	return role, ok
}
