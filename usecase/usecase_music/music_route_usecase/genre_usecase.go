package music_route_usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
)

type GenreUsecase struct {
	genres  music_interface.GenreRepository
	timeout time.Duration
}

func NewGenreUsecase(genres music_interface.GenreRepository, timeout time.Duration) *GenreUsecase {
	return &GenreUsecase{genres: genres, timeout: timeout}
}

func (uc *GenreUsecase) List(ctx context.Context) ([]*music_models.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.genres.List(ctx)
}

func (uc *GenreUsecase) Get(ctx context.Context, id string) (*music_models.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(id, "genre id")
	if err != nil {
		return nil, err
	}
	genre, err := uc.genres.GetByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, "Genre not found.")
	}
	return genre, nil
}

func (uc *GenreUsecase) Create(ctx context.Context, name string) (*music_models.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	name = domain_util.SanitizeText(name)
	if name == "" {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Genre name is required.")
	}
	genre := &music_models.Genre{Name: name}
	if err := uc.genres.Create(ctx, genre); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, music_models.NewValidationError(music_models.KindConflict, "Genre %s already exists.", name)
		}
		return nil, err
	}
	return genre, nil
}
