package mocks

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenreRepository is a mock type for the GenreRepository type
type GenreRepository struct {
	mock.Mock
}

func (_m *GenreRepository) List(ctx context.Context) ([]*music_models.Genre, error) {
	ret := _m.Called(ctx)
	var r0 []*music_models.Genre
	if rv := ret.Get(0); rv != nil {
		r0 = rv.([]*music_models.Genre)
	}
	return r0, ret.Error(1)
}

func (_m *GenreRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.Genre, error) {
	ret := _m.Called(ctx, id)
	var r0 *music_models.Genre
	if rv := ret.Get(0); rv != nil {
		r0 = rv.(*music_models.Genre)
	}
	return r0, ret.Error(1)
}

func (_m *GenreRepository) Create(ctx context.Context, genre *music_models.Genre) error {
	ret := _m.Called(ctx, genre)
	return ret.Error(0)
}

func (_m *GenreRepository) EnsureNames(ctx context.Context, names []string) error {
	ret := _m.Called(ctx, names)
	return ret.Error(0)
}
