package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistRepository is a mock type for the PlaylistRepository type
type PlaylistRepository struct {
	mock.Mock
}

func (_m *PlaylistRepository) Create(ctx context.Context, playlist *music_models.Playlist) error {
	ret := _m.Called(ctx, playlist)
	return ret.Error(0)
}

func (_m *PlaylistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.Playlist, error) {
	ret := _m.Called(ctx, id)
	var r0 *music_models.Playlist
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Playlist)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	ret := _m.Called(ctx, id, update)
	r0 := ret.Get(0).(bool)
	return r0, ret.Error(1)
}

func (_m *PlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *PlaylistRepository) ListVisible(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Playlist, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*music_models.Playlist
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Playlist)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistRepository) AddSongs(ctx context.Context, id primitive.ObjectID, songIDs []primitive.ObjectID) error {
	ret := _m.Called(ctx, id, songIDs)
	return ret.Error(0)
}

func (_m *PlaylistRepository) RemoveSongEverywhere(ctx context.Context, songID primitive.ObjectID) error {
	ret := _m.Called(ctx, songID)
	return ret.Error(0)
}

func (_m *PlaylistRepository) AddFollower(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	ret := _m.Called(ctx, id, userID)
	return ret.Error(0)
}

func (_m *PlaylistRepository) RemoveFollower(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	ret := _m.Called(ctx, id, userID)
	return ret.Error(0)
}
