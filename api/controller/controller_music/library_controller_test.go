package controller_music

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newLibraryRouter(uc *mocks.LibraryUsecase, userID primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewLibraryController(uc)
	r := gin.New()
	g := r.Group("/api", authed(userID, music_models.RoleUser))
	g.POST("/favoritesongs", ctrl.Like)
	g.DELETE("/favoritesongs/:song_id", ctrl.Unlike)
	g.GET("/downloadedsongs", ctrl.ListDownloads)
	return r
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLikeSong(t *testing.T) {
	uc := new(mocks.LibraryUsecase)
	userID, songID := primitive.NewObjectID(), primitive.NewObjectID()
	uc.On("Like", mock.Anything, userID, songID.Hex()).
		Return(&music_models.Like{ID: primitive.NewObjectID(), UserID: userID, SongID: songID}, nil).Once()
	uc.On("Like", mock.Anything, userID, songID.Hex()).
		Return(nil, music_models.NewValidationError(music_models.KindInvalidArgument, "This song is already in your favorites.")).Once()
	r := newLibraryRouter(uc, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/favoritesongs", `{"song":"`+songID.Hex()+`"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, songID.Hex(), decode(t, w)["song"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/favoritesongs", `{"song":"`+songID.Hex()+`"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This song is already in your favorites.", decode(t, w)["message"])
}

func TestUnlikeMissing(t *testing.T) {
	uc := new(mocks.LibraryUsecase)
	userID := primitive.NewObjectID()
	uc.On("Unlike", mock.Anything, userID, "abc").
		Return(music_models.NewValidationError(music_models.KindNotFound, "This song is not in your favorites."))
	r := newLibraryRouter(uc, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/favoritesongs/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
