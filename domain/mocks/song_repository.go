package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SongRepository is a mock type for the SongRepository type
type SongRepository struct {
	mock.Mock
}

func (_m *SongRepository) Create(ctx context.Context, song *music_models.Song) error {
	ret := _m.Called(ctx, song)
	return ret.Error(0)
}

func (_m *SongRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.Song, error) {
	ret := _m.Called(ctx, id)
	var r0 *music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, ids)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	ret := _m.Called(ctx, id, update)
	r0 := ret.Get(0).(bool)
	return r0, ret.Error(1)
}

func (_m *SongRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *SongRepository) List(ctx context.Context, skip int64, limit int64, sort bson.D) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, skip, limit, sort)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) SearchCandidates(ctx context.Context, tokens []string, limit int64) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, tokens, limit)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) TopByStreaming(ctx context.Context, limit int64) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, limit)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) Newest(ctx context.Context, limit int64) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, limit)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) ByGenreRelevance(ctx context.Context, genres []string, limit int64) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, genres, limit)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) ByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, artistID)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongRepository) IncrementStreaming(ctx context.Context, id primitive.ObjectID) (int, error) {
	ret := _m.Called(ctx, id)
	r0 := ret.Get(0).(int)
	return r0, ret.Error(1)
}
