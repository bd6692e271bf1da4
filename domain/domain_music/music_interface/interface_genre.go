package music_interface

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GenreRepository interface {
	List(ctx context.Context) ([]*music_models.Genre, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.Genre, error)
	Create(ctx context.Context, genre *music_models.Genre) error
	// EnsureNames 未登记的流派名称自动创建
	EnsureNames(ctx context.Context, names []string) error
}

type GenreUsecase interface {
	List(ctx context.Context) ([]*music_models.Genre, error)
	Get(ctx context.Context, id string) (*music_models.Genre, error)
	Create(ctx context.Context, name string) (*music_models.Genre, error)
}
