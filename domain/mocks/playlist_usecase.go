package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistUsecase is a mock type for the PlaylistUsecase type
type PlaylistUsecase struct {
	mock.Mock
}

func (_m *PlaylistUsecase) Create(ctx context.Context, userID primitive.ObjectID, req *music_models.PlaylistRequest) (*music_models.Playlist, error) {
	ret := _m.Called(ctx, userID, req)
	var r0 *music_models.Playlist
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Playlist)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistUsecase) List(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Playlist, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*music_models.Playlist
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Playlist)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistUsecase) Get(ctx context.Context, userID primitive.ObjectID, id string) (*music_models.Playlist, error) {
	ret := _m.Called(ctx, userID, id)
	var r0 *music_models.Playlist
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Playlist)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistUsecase) Update(ctx context.Context, userID primitive.ObjectID, id string, req *music_models.PlaylistRequest) (*music_models.Playlist, error) {
	ret := _m.Called(ctx, userID, id, req)
	var r0 *music_models.Playlist
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Playlist)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistUsecase) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	ret := _m.Called(ctx, userID, id)
	return ret.Error(0)
}

func (_m *PlaylistUsecase) AddSongs(ctx context.Context, userID primitive.ObjectID, id string, songIDs []string) (*music_models.Playlist, error) {
	ret := _m.Called(ctx, userID, id, songIDs)
	var r0 *music_models.Playlist
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Playlist)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistUsecase) GetSongs(ctx context.Context, userID primitive.ObjectID, id string) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, userID, id)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *PlaylistUsecase) Follow(ctx context.Context, userID primitive.ObjectID, id string) error {
	ret := _m.Called(ctx, userID, id)
	return ret.Error(0)
}

func (_m *PlaylistUsecase) Unfollow(ctx context.Context, userID primitive.ObjectID, id string) error {
	ret := _m.Called(ctx, userID, id)
	return ret.Error(0)
}

// GenreUsecase is a mock type for the GenreUsecase type
type GenreUsecase struct {
	mock.Mock
}

func (_m *GenreUsecase) List(ctx context.Context) ([]*music_models.Genre, error) {
	ret := _m.Called(ctx)
	var r0 []*music_models.Genre
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Genre)
	}
	return r0, ret.Error(1)
}

func (_m *GenreUsecase) Get(ctx context.Context, id string) (*music_models.Genre, error) {
	ret := _m.Called(ctx, id)
	var r0 *music_models.Genre
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Genre)
	}
	return r0, ret.Error(1)
}

func (_m *GenreUsecase) Create(ctx context.Context, name string) (*music_models.Genre, error) {
	ret := _m.Called(ctx, name)
	var r0 *music_models.Genre
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Genre)
	}
	return r0, ret.Error(1)
}
