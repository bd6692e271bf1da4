package repository_music

import (
	"context"
	"fmt"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type playGuardRepository struct {
	db         mongo.Database
	collection string
	now        func() time.Time
}

func NewPlayGuardRepository(db mongo.Database, collection string) music_interface.PlayGuardRepository {
	return &playGuardRepository{
		db:         db,
		collection: collection,
		now:        time.Now,
	}
}

// Acquire 单次条件 upsert：过期记录被续期，未过期记录匹配失败后
// 插入触发 (user_id, song_id) 唯一索引冲突，视为窗口内重复。
// 依赖 mongo.CreateIndexes 中的 user_song_unique 索引，索引缺失时启动即失败
func (r *playGuardRepository) Acquire(ctx context.Context, userID, songID primitive.ObjectID, window time.Duration) (bool, error) {
	now := r.now().UTC()
	filter := bson.M{
		"user_id":    userID,
		"song_id":    songID,
		"expires_at": bson.M{"$lte": now},
	}
	update := bson.M{"$set": bson.M{"expires_at": now.Add(window)}}

	_, err := r.db.Collection(r.collection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("播放去重失败: %w", err)
	}
	return true, nil
}

func (r *playGuardRepository) Release(ctx context.Context, userID, songID primitive.ObjectID) error {
	_, err := r.db.Collection(r.collection).DeleteOne(ctx, bson.M{"user_id": userID, "song_id": songID})
	if err != nil {
		return fmt.Errorf("释放播放去重失败: %w", err)
	}
	return nil
}
