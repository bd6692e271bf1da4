package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IngestUsecase is a mock type for the IngestUsecase type
type IngestUsecase struct {
	mock.Mock
}

func (_m *IngestUsecase) Ingest(ctx context.Context, req *music_models.SongIngestRequest) (*music_models.Song, error) {
	ret := _m.Called(ctx, req)
	var r0 *music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Song)
	}
	return r0, ret.Error(1)
}

// SearchUsecase is a mock type for the SearchUsecase type
type SearchUsecase struct {
	mock.Mock
}

func (_m *SearchUsecase) Search(ctx context.Context, query string) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, query)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

// SongUsecase is a mock type for the SongUsecase type
type SongUsecase struct {
	mock.Mock
}

func (_m *SongUsecase) List(ctx context.Context, query music_models.SongListQuery) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, query)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongUsecase) Get(ctx context.Context, id string) (*music_models.Song, error) {
	ret := _m.Called(ctx, id)
	var r0 *music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongUsecase) Update(ctx context.Context, callerID primitive.ObjectID, id string, req *music_models.SongUpdateRequest) (*music_models.Song, error) {
	ret := _m.Called(ctx, callerID, id, req)
	var r0 *music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongUsecase) Delete(ctx context.Context, callerID primitive.ObjectID, id string) error {
	ret := _m.Called(ctx, callerID, id)
	return ret.Error(0)
}

func (_m *SongUsecase) FilterSongs(ctx context.Context, filterBy string, genres []string) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, filterBy, genres)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongUsecase) ByArtist(ctx context.Context, artistID string) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, artistID)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongUsecase) LikedSongs(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongUsecase) DownloadedSongs(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Song, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*music_models.Song
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Song)
	}
	return r0, ret.Error(1)
}

func (_m *SongUsecase) Play(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.PlayResult, error) {
	ret := _m.Called(ctx, userID, songID)
	var r0 *music_models.PlayResult
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.PlayResult)
	}
	return r0, ret.Error(1)
}
