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

type playlistRepository struct {
	domain.BaseRepository[music_models.Playlist]
	db         mongo.Database
	collection string
}

func NewPlaylistRepository(db mongo.Database, collection string) music_interface.PlaylistRepository {
	return &playlistRepository{
		BaseRepository: repository.NewBaseMongoRepository[music_models.Playlist](db, collection),
		db:             db,
		collection:     collection,
	}
}

func (r *playlistRepository) ListVisible(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Playlist, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"creator_user": userID},
		bson.M{"private": false},
	}}
	return r.GetByFilter(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}))
}

func (r *playlistRepository) AddSongs(ctx context.Context, id primitive.ObjectID, songIDs []primitive.ObjectID) error {
	_, err := r.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{"songs": bson.M{"$each": songIDs}}})
	return err
}

func (r *playlistRepository) RemoveSongEverywhere(ctx context.Context, songID primitive.ObjectID) error {
	_, err := r.db.Collection(r.collection).UpdateMany(ctx,
		bson.M{"songs": songID},
		bson.M{"$pull": bson.M{"songs": songID}},
	)
	if err != nil {
		return fmt.Errorf("歌单曲目移除失败: %w", err)
	}
	return nil
}

func (r *playlistRepository) AddFollower(ctx context.Context, id, userID primitive.ObjectID) error {
	_, err := r.UpdateByID(ctx, id, bson.M{"$addToSet": bson.M{"followers": userID}})
	return err
}

func (r *playlistRepository) RemoveFollower(ctx context.Context, id, userID primitive.ObjectID) error {
	_, err := r.UpdateByID(ctx, id, bson.M{"$pull": bson.M{"followers": userID}})
	return err
}
