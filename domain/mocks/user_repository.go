package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is a mock type for the UserRepository type
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) Create(ctx context.Context, user *music_models.UserProfile) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

func (_m *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.UserProfile, error) {
	ret := _m.Called(ctx, id)
	var r0 *music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*music_models.UserProfile, error) {
	ret := _m.Called(ctx, ids)
	var r0 []*music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) GetByEmail(ctx context.Context, email string) (*music_models.UserProfile, error) {
	ret := _m.Called(ctx, email)
	var r0 *music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	ret := _m.Called(ctx, id, update)
	r0 := ret.Get(0).(bool)
	return r0, ret.Error(1)
}

func (_m *UserRepository) ListByRole(ctx context.Context, role music_models.Role) ([]*music_models.UserProfile, error) {
	ret := _m.Called(ctx, role)
	var r0 []*music_models.UserProfile
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) AddFollowing(ctx context.Context, userID primitive.ObjectID, artistID primitive.ObjectID) error {
	ret := _m.Called(ctx, userID, artistID)
	return ret.Error(0)
}

func (_m *UserRepository) RemoveFollowing(ctx context.Context, userID primitive.ObjectID, artistID primitive.ObjectID) error {
	ret := _m.Called(ctx, userID, artistID)
	return ret.Error(0)
}
