package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountUsecase is a mock type for the AccountUsecase type
type AccountUsecase struct {
	mock.Mock
}

func (_m *AccountUsecase) Signup(ctx context.Context, req *music_models.SignupRequest) (*music_models.UserProfile, error) {
	ret := _m.Called(ctx, req)
	var r0 *music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *AccountUsecase) Login(ctx context.Context, req *music_models.LoginRequest) (*music_models.LoginResponse, error) {
	ret := _m.Called(ctx, req)
	var r0 *music_models.LoginResponse
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.LoginResponse)
	}
	return r0, ret.Error(1)
}

func (_m *AccountUsecase) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*music_models.UserProfile, error) {
	ret := _m.Called(ctx, userID)
	var r0 *music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *AccountUsecase) GetProfile(ctx context.Context, viewerID primitive.ObjectID, id string) (*music_models.UserProfile, error) {
	ret := _m.Called(ctx, viewerID, id)
	var r0 *music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *AccountUsecase) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *music_models.ProfileUpdateRequest) (*music_models.UserProfile, error) {
	ret := _m.Called(ctx, userID, req)
	var r0 *music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *AccountUsecase) Follow(ctx context.Context, userID primitive.ObjectID, artistID string) error {
	ret := _m.Called(ctx, userID, artistID)
	return ret.Error(0)
}

func (_m *AccountUsecase) Unfollow(ctx context.Context, userID primitive.ObjectID, artistID string) error {
	ret := _m.Called(ctx, userID, artistID)
	return ret.Error(0)
}

func (_m *AccountUsecase) ListArtists(ctx context.Context) ([]*music_models.UserProfile, error) {
	ret := _m.Called(ctx)
	var r0 []*music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *AccountUsecase) GetArtist(ctx context.Context, id string) (*music_models.UserProfile, error) {
	ret := _m.Called(ctx, id)
	var r0 *music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}
