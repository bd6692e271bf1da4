package controller_music

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAccountRouter(uc *mocks.AccountUsecase, userID primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAccountController(uc)
	r := gin.New()
	r.POST("/api/signup", ctrl.Signup)
	r.POST("/api/login", ctrl.Login)
	r.GET("/api/artists", ctrl.ListArtists)
	protected := r.Group("/api", authed(userID, music_models.RoleUser))
	protected.POST("/logout", ctrl.Logout)
	protected.POST("/users/:id/follow", ctrl.Follow)
	return r
}

func TestSignupForm(t *testing.T) {
	uc := new(mocks.AccountUsecase)
	uc.On("Signup", mock.Anything, &music_models.SignupRequest{
		ShowedName:  "Nova",
		Email:       "nova@example.com",
		Password:    "secret",
		AccountType: "2",
		Visibility:  "true",
	}).Return(&music_models.UserProfile{ID: primitive.NewObjectID()}, nil).Once()
	r := newAccountRouter(uc, primitive.NewObjectID())

	form := url.Values{
		"showed_name":  {"Nova"},
		"email":        {"nova@example.com"},
		"password":     {"secret"},
		"account_type": {"2"},
		"visibility":   {"true"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "User created successfully!", decode(t, w)["message"])
	uc.AssertExpectations(t)
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc := new(mocks.AccountUsecase)
	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, music_models.NewValidationError(music_models.KindUnauthorized, "Invalid email or password."))
	r := newAccountRouter(uc, primitive.NewObjectID())

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password.", decode(t, w)["message"])
}

func TestLogout(t *testing.T) {
	r := newAccountRouter(new(mocks.AccountUsecase), primitive.NewObjectID())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logout successful.", decode(t, w)["message"])
}

func TestFollowArtist(t *testing.T) {
	uc := new(mocks.AccountUsecase)
	userID, artistID := primitive.NewObjectID(), primitive.NewObjectID()
	uc.On("Follow", mock.Anything, userID, artistID.Hex()).Return(nil).Once()
	r := newAccountRouter(uc, userID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users/"+artistID.Hex()+"/follow", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	uc.AssertExpectations(t)
}

func TestListArtistsHidesPrivateFields(t *testing.T) {
	uc := new(mocks.AccountUsecase)
	uc.On("ListArtists", mock.Anything).Return([]*music_models.UserProfile{{
		ID:           primitive.NewObjectID(),
		Email:        "artist@example.com",
		PasswordHash: "hash",
		ShowedName:   "Artist",
		AccountType:  music_models.RoleArtist,
	}}, nil)
	r := newAccountRouter(uc, primitive.NewObjectID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/artists", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "artist@example.com")
	assert.NotContains(t, w.Body.String(), "hash")
	assert.Contains(t, w.Body.String(), "Artist")
}
