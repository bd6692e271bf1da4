package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes 普通索引失败只记录日志；播放去重依赖的唯一索引失败时返回错误
func CreateIndexes(db Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// User Collection
	userCollection := db.Collection(domain.CollectionUser)
	createIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email_unique", options.Index().SetUnique(true))
	createIndex(ctx, userCollection, bson.D{{Key: "account_type", Value: 1}, {Key: "showed_name", Value: 1}}, "account_type_name")

	// Song Collection
	songCollection := db.Collection(domain.CollectionSong)
	createIndex(ctx, songCollection, bson.D{{Key: "artists", Value: 1}, {Key: "created_at", Value: -1}}, "artists_created")
	createIndex(ctx, songCollection, bson.D{{Key: "genres", Value: 1}}, "genres")
	createIndex(ctx, songCollection, bson.D{{Key: "streaming_numbers", Value: -1}}, "streaming_numbers")
	createIndex(ctx, songCollection, bson.D{{Key: "created_at", Value: -1}, {Key: "streaming_numbers", Value: -1}}, "created_streaming_compound")
	createIndex(ctx, songCollection, bson.D{{Key: "order_title", Value: 1}}, "order_title")

	// Genre Collection
	genreCollection := db.Collection(domain.CollectionGenre)
	createIndex(ctx, genreCollection, bson.D{{Key: "name", Value: 1}}, "name_unique", options.Index().SetUnique(true))

	// Like / Download Collection
	for _, name := range []string{domain.CollectionLike, domain.CollectionDownloadedSong} {
		coll := db.Collection(name)
		createIndex(ctx, coll, bson.D{{Key: "user_id", Value: 1}, {Key: "song_id", Value: 1}}, "user_song_unique", options.Index().SetUnique(true))
		createIndex(ctx, coll, bson.D{{Key: "song_id", Value: 1}}, "song_id")
	}
	createIndex(ctx, db.Collection(domain.CollectionDownloadedSong),
		bson.D{{Key: "user_id", Value: 1}, {Key: "last_downloaded_at", Value: -1}}, "user_last_downloaded")

	// Playlist Collection
	playlistCollection := db.Collection(domain.CollectionPlaylist)
	createIndex(ctx, playlistCollection, bson.D{{Key: "creator_user", Value: 1}}, "creator_user")
	createIndex(ctx, playlistCollection, bson.D{{Key: "private", Value: 1}, {Key: "created_at", Value: -1}}, "private_created")
	createIndex(ctx, playlistCollection, bson.D{{Key: "songs", Value: 1}}, "songs")

	// Play Guard Collection：唯一键保证并发去重，TTL 清理过期记录
	guardCollection := db.Collection(domain.CollectionPlayGuard)
	createIndex(ctx, guardCollection, bson.D{{Key: "expires_at", Value: 1}}, "expires_at_ttl", options.Index().SetExpireAfterSeconds(0))
	if err := createIndex(ctx, guardCollection, bson.D{{Key: "user_id", Value: 1}, {Key: "song_id", Value: 1}}, "user_song_unique", options.Index().SetUnique(true)); err != nil {
		return fmt.Errorf("play guard index %s: %w", domain.CollectionPlayGuard, err)
	}
	return nil
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
	extra ...*options.IndexOptions,
) error {
	opts := options.Index().SetName(name)
	for _, e := range extra {
		if e.Unique != nil {
			opts.SetUnique(*e.Unique)
		}
		if e.ExpireAfterSeconds != nil {
			opts.SetExpireAfterSeconds(*e.ExpireAfterSeconds)
		}
	}

	indexModel := mongo.IndexModel{Keys: keys, Options: opts}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Error("创建索引失败", "index", name, "err", err)
		return err
	}
	log.Debug("索引创建成功", "index", name)
	return nil
}
