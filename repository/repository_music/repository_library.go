package repository_music

import (
	"context"
	"fmt"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type likeRepository struct {
	domain.BaseRepository[music_models.Like]
}

func NewLikeRepository(db mongo.Database, collection string) music_interface.LikeRepository {
	return &likeRepository{
		BaseRepository: repository.NewBaseMongoRepository[music_models.Like](db, collection),
	}
}

func (r *likeRepository) Create(ctx context.Context, like *music_models.Like) error {
	if err := r.BaseRepository.Create(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: like %s/%s", domain.ErrDuplicate, like.UserID.Hex(), like.SongID.Hex())
		}
		return err
	}
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, songID primitive.ObjectID) (bool, error) {
	n, err := r.DeleteMany(ctx, bson.M{"user_id": userID, "song_id": songID})
	return n > 0, err
}

func (r *likeRepository) SongIDsByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	likes, err := r.GetByFilter(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(likes))
	for i, l := range likes {
		ids[i] = l.SongID
	}
	return ids, nil
}

func (r *likeRepository) DeleteBySong(ctx context.Context, songID primitive.ObjectID) error {
	_, err := r.DeleteMany(ctx, bson.M{"song_id": songID})
	return err
}

type downloadRepository struct {
	domain.BaseRepository[music_models.DownloadedSong]
	db         mongo.Database
	collection string
}

func NewDownloadRepository(db mongo.Database, collection string) music_interface.DownloadRepository {
	return &downloadRepository{
		BaseRepository: repository.NewBaseMongoRepository[music_models.DownloadedSong](db, collection),
		db:             db,
		collection:     collection,
	}
}

func (r *downloadRepository) Record(ctx context.Context, userID, songID primitive.ObjectID, at time.Time) (*music_models.DownloadedSong, error) {
	var record music_models.DownloadedSong
	err := r.db.Collection(r.collection).FindOneAndUpdate(ctx,
		bson.M{"user_id": userID, "song_id": songID},
		bson.M{
			"$set":         bson.M{"last_downloaded_at": at.UTC()},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		return nil, fmt.Errorf("下载记录写入失败: %w", err)
	}
	return &record, nil
}

func (r *downloadRepository) Delete(ctx context.Context, userID, songID primitive.ObjectID) (bool, error) {
	n, err := r.DeleteMany(ctx, bson.M{"user_id": userID, "song_id": songID})
	return n > 0, err
}

func (r *downloadRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*music_models.DownloadedSong, error) {
	return r.GetByFilter(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "last_downloaded_at", Value: -1}, {Key: "_id", Value: 1}}))
}

func (r *downloadRepository) DeleteBySong(ctx context.Context, songID primitive.ObjectID) error {
	_, err := r.DeleteMany(ctx, bson.M{"song_id": songID})
	return err
}
