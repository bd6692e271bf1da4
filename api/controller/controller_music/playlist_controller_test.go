package controller_music

import (
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

func newPlaylistRouter(uc *mocks.PlaylistUsecase, userID primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &PlaylistController{PlaylistUsecase: uc, MediaURL: mediaURL}
	r := gin.New()
	g := r.Group("/api/playlists", authed(userID, music_models.RoleUser))
	g.POST("/:id/add_songs", ctrl.AddSongs)
	g.GET("/:id/get_songs", ctrl.GetSongs)
	return r
}

func TestAddSongsResponse(t *testing.T) {
	uc := new(mocks.PlaylistUsecase)
	userID, playlistID, songID := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	uc.On("AddSongs", mock.Anything, userID, playlistID.Hex(), []string{songID.Hex()}).
		Return(&music_models.Playlist{ID: playlistID}, nil).Once()
	uc.On("AddSongs", mock.Anything, userID, playlistID.Hex(), []string{"bogus"}).
		Return(nil, music_models.NewValidationError(music_models.KindInvalidArgument, "No valid songs found")).Once()
	r := newPlaylistRouter(uc, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/playlists/"+playlistID.Hex()+"/add_songs", `{"song_ids":["`+songID.Hex()+`"]}`))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Songs added to playlist", body["message"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/api/playlists/"+playlistID.Hex()+"/add_songs", `{"song_ids":["bogus"]}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No valid songs found", decode(t, w)["message"])
}

func TestGetSongsWrapsList(t *testing.T) {
	uc := new(mocks.PlaylistUsecase)
	userID, playlistID := primitive.NewObjectID(), primitive.NewObjectID()
	uc.On("GetSongs", mock.Anything, userID, playlistID.Hex()).
		Return([]*music_models.Song{{ID: primitive.NewObjectID(), Name: "A", CoverImagePath: "covers/a.png"}}, nil)
	r := newPlaylistRouter(uc, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/playlists/"+playlistID.Hex()+"/get_songs", nil))
	require.Equal(t, http.StatusOK, w.Code)
	songs := decode(t, w)["songs"].([]interface{})
	require.Len(t, songs, 1)
	assert.Equal(t, "/media/covers/a.png", songs[0].(map[string]interface{})["cover_image_url"])
}
