package mocks

import (
	"context"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeRepository is a mock type for the LikeRepository type
type LikeRepository struct {
	mock.Mock
}

func (_m *LikeRepository) Create(ctx context.Context, like *music_models.Like) error {
	ret := _m.Called(ctx, like)
	return ret.Error(0)
}

func (_m *LikeRepository) Delete(ctx context.Context, userID primitive.ObjectID, songID primitive.ObjectID) (bool, error) {
	ret := _m.Called(ctx, userID, songID)
	r0 := ret.Get(0).(bool)
	return r0, ret.Error(1)
}

func (_m *LikeRepository) SongIDsByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ret := _m.Called(ctx, userID)
	var r0 []primitive.ObjectID
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]primitive.ObjectID)
	}
	return r0, ret.Error(1)
}

func (_m *LikeRepository) DeleteBySong(ctx context.Context, songID primitive.ObjectID) error {
	ret := _m.Called(ctx, songID)
	return ret.Error(0)
}

// DownloadRepository is a mock type for the DownloadRepository type
type DownloadRepository struct {
	mock.Mock
}

func (_m *DownloadRepository) Record(ctx context.Context, userID primitive.ObjectID, songID primitive.ObjectID, at time.Time) (*music_models.DownloadedSong, error) {
	ret := _m.Called(ctx, userID, songID, at)
	var r0 *music_models.DownloadedSong
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.DownloadedSong)
	}
	return r0, ret.Error(1)
}

func (_m *DownloadRepository) Delete(ctx context.Context, userID primitive.ObjectID, songID primitive.ObjectID) (bool, error) {
	ret := _m.Called(ctx, userID, songID)
	r0 := ret.Get(0).(bool)
	return r0, ret.Error(1)
}

func (_m *DownloadRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*music_models.DownloadedSong, error) {
	ret := _m.Called(ctx, userID)
	var r0 []*music_models.DownloadedSong
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.DownloadedSong)
	}
	return r0, ret.Error(1)
}

func (_m *DownloadRepository) DeleteBySong(ctx context.Context, songID primitive.ObjectID) error {
	ret := _m.Called(ctx, songID)
	return ret.Error(0)
}
