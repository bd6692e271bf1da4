package repository_music

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type songRepository struct {
	domain.BaseRepository[music_models.Song]
	db         mongo.Database
	collection string
}

func NewSongRepository(db mongo.Database, collection string) music_interface.SongRepository {
	return &songRepository{
		BaseRepository: repository.NewBaseMongoRepository[music_models.Song](db, collection),
		db:             db,
		collection:     collection,
	}
}

func (r *songRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*music_models.Song, error) {
	if len(ids) == 0 {
		return []*music_models.Song{}, nil
	}
	return r.GetByFilter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *songRepository) List(ctx context.Context, skip, limit int64, sort bson.D) ([]*music_models.Song, error) {
	return r.GetPaginated(ctx, bson.M{}, skip, limit, sort)
}

// BuildSearchFilter 任一 token 以不区分大小写的字面量匹配 name/description/genres
func BuildSearchFilter(tokens []string) bson.M {
	or := bson.A{}
	for _, token := range tokens {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(token), Options: "i"}
		or = append(or,
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"genres": re},
		)
	}
	return bson.M{"$or": or}
}

func (r *songRepository) SearchCandidates(ctx context.Context, tokens []string, limit int64) ([]*music_models.Song, error) {
	if len(tokens) == 0 {
		return []*music_models.Song{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	songs, err := r.GetByFilter(ctx, BuildSearchFilter(tokens), opts)
	if err != nil {
		return nil, fmt.Errorf("歌曲检索失败: %w", err)
	}
	return songs, nil
}

func (r *songRepository) TopByStreaming(ctx context.Context, limit int64) ([]*music_models.Song, error) {
	return r.GetPaginated(ctx, bson.M{}, 0, limit, bson.D{{Key: "streaming_numbers", Value: -1}})
}

func (r *songRepository) Newest(ctx context.Context, limit int64) ([]*music_models.Song, error) {
	return r.GetPaginated(ctx, bson.M{}, 0, limit, bson.D{
		{Key: "created_at", Value: -1},
		{Key: "streaming_numbers", Value: -1},
	})
}

// ByGenreRelevance 按命中流派数量、播放量排序
func (r *songRepository) ByGenreRelevance(ctx context.Context, genres []string, limit int64) ([]*music_models.Song, error) {
	if len(genres) == 0 {
		return []*music_models.Song{}, nil
	}
	pipeline := []bson.M{
		{"$match": bson.M{"genres": bson.M{"$in": genres}}},
		{"$addFields": bson.M{
			"genre_relevance": bson.M{"$size": bson.M{"$setIntersection": bson.A{"$genres", genres}}},
		}},
		{"$sort": bson.D{
			{Key: "genre_relevance", Value: -1},
			{Key: "streaming_numbers", Value: -1},
			{Key: "_id", Value: 1},
		}},
		{"$limit": limit},
		{"$project": bson.M{"genre_relevance": 0}},
	}

	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("流派聚合失败: %w", err)
	}
	defer cursor.Close(ctx)

	songs := make([]*music_models.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("流派结果解码失败: %w", err)
	}
	return songs, nil
}

func (r *songRepository) ByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*music_models.Song, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	return r.GetByFilter(ctx, bson.M{"artists": artistID}, opts)
}

func (r *songRepository) IncrementStreaming(ctx context.Context, id primitive.ObjectID) (int, error) {
	var song music_models.Song
	err := r.db.Collection(r.collection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"streaming_numbers": 1}},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"streaming_numbers": 1}),
	).Decode(&song)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			return 0, fmt.Errorf("%w with id: %s", domain.ErrNotFound, id.Hex())
		}
		return 0, fmt.Errorf("播放数更新失败: %w", err)
	}
	return song.StreamingNumbers, nil
}
