package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/internal/tokenutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const secret = "middleware-secret"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.String(http.StatusOK, id.Hex())
	})
	r.GET("/private", handlers...)
	return r
}

func token(t *testing.T, role music_models.Role, expiry time.Duration) (string, primitive.ObjectID) {
	t.Helper()
	user := &music_models.UserProfile{ID: primitive.NewObjectID(), ShowedName: "Nova", AccountType: role}
	tok, err := tokenutil.CreateAccessToken(user, secret, expiry)
	require.NoError(t, err)
	return tok, user.ID
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJwtAuthMiddleware(t *testing.T) {
	r := newRouter(JwtAuthMiddleware(secret))
	tok, id := token(t, music_models.RoleUser, time.Hour)

	w := serve(r, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.Hex(), w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Token "+tok).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer garbage").Code)

	expired, _ := token(t, music_models.RoleUser, -time.Minute)
	w = serve(r, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired.")
}

func TestRequireRole(t *testing.T) {
	r := newRouter(JwtAuthMiddleware(secret), RequireRole(music_models.RoleArtist))

	artist, _ := token(t, music_models.RoleArtist, time.Hour)
	assert.Equal(t, http.StatusOK, serve(r, "Bearer "+artist).Code)

	listener, _ := token(t, music_models.RoleUser, time.Hour)
	assert.Equal(t, http.StatusForbidden, serve(r, "Bearer "+listener).Code)

	unauthenticated := newRouter(RequireRole(music_models.RoleArtist))
	assert.Equal(t, http.StatusUnauthorized, serve(unauthenticated, "").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	r := newRouter(RequestLogger(logger))

	serve(r, "")
	assert.Contains(t, buf.String(), "/private")
	assert.Contains(t, buf.String(), "status=200")
}
