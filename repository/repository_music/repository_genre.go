package repository_music

import (
	"context"
	"fmt"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type genreRepository struct {
	domain.BaseRepository[music_models.Genre]
	db         mongo.Database
	collection string
}

func NewGenreRepository(db mongo.Database, collection string) music_interface.GenreRepository {
	return &genreRepository{
		BaseRepository: repository.NewBaseMongoRepository[music_models.Genre](db, collection),
		db:             db,
		collection:     collection,
	}
}

func (r *genreRepository) List(ctx context.Context) ([]*music_models.Genre, error) {
	return r.GetByFilter(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *genreRepository) Create(ctx context.Context, genre *music_models.Genre) error {
	if err := r.BaseRepository.Create(ctx, genre); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: genre %s", domain.ErrDuplicate, genre.Name)
		}
		return err
	}
	return nil
}

func (r *genreRepository) EnsureNames(ctx context.Context, names []string) error {
	coll := r.db.Collection(r.collection)
	for _, name := range names {
		_, err := coll.UpdateOne(ctx,
			bson.M{"name": name},
			bson.M{"$setOnInsert": bson.M{"_id": primitive.NewObjectID()}},
			options.Update().SetUpsert(true),
		)
		// 并发插入同名流派
		if err != nil && !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("流派登记失败 %s: %w", name, err)
		}
	}
	return nil
}
