package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LibraryUsecase is a mock type for the LibraryUsecase type
type LibraryUsecase struct {
	mock.Mock
}

func (_m *LibraryUsecase) Like(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.Like, error) {
	ret := _m.Called(ctx, userID, songID)
	var r0 *music_models.Like
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Like)
	}
	return r0, ret.Error(1)
}

func (_m *LibraryUsecase) Unlike(ctx context.Context, userID primitive.ObjectID, songID string) error {
	ret := _m.Called(ctx, userID, songID)
	return ret.Error(0)
}

func (_m *LibraryUsecase) RecordDownload(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.DownloadedSong, error) {
	ret := _m.Called(ctx, userID, songID)
	var r0 *music_models.DownloadedSong
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.DownloadedSong)
	}
	return r0, ret.Error(1)
}

func (_m *LibraryUsecase) ListDownloads(ctx context.Context, userID primitive.ObjectID) ([]*music_models.DownloadedSong, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*music_models.DownloadedSong
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.DownloadedSong)
	}
	return r0, ret.Error(1)
}

func (_m *LibraryUsecase) DeleteDownload(ctx context.Context, userID primitive.ObjectID, songID string) error {
	ret := _m.Called(ctx, userID, songID)
	return ret.Error(0)
}
