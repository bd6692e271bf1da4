package music_interface

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SongRepository 歌曲持久化接口
type SongRepository interface {
	Create(ctx context.Context, song *music_models.Song) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.Song, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*music_models.Song, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, skip, limit int64, sort bson.D) ([]*music_models.Song, error)

	// SearchCandidates 任一 token 命中 name/description/genres，按 _id 升序，最多 limit 条
	SearchCandidates(ctx context.Context, tokens []string, limit int64) ([]*music_models.Song, error)

	TopByStreaming(ctx context.Context, limit int64) ([]*music_models.Song, error)
	Newest(ctx context.Context, limit int64) ([]*music_models.Song, error)
	ByGenreRelevance(ctx context.Context, genres []string, limit int64) ([]*music_models.Song, error)
	ByArtist(ctx context.Context, artistID primitive.ObjectID) ([]*music_models.Song, error)

	// IncrementStreaming 返回自增后的播放数
	IncrementStreaming(ctx context.Context, id primitive.ObjectID) (int, error)
}

// IngestUsecase 上传校验与入库
type IngestUsecase interface {
	Ingest(ctx context.Context, req *music_models.SongIngestRequest) (*music_models.Song, error)
}

// SearchUsecase 相关度检索
type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]*music_models.Song, error)
}

type SongUsecase interface {
	List(ctx context.Context, query music_models.SongListQuery) ([]*music_models.Song, error)
	Get(ctx context.Context, id string) (*music_models.Song, error)
	Update(ctx context.Context, callerID primitive.ObjectID, id string, req *music_models.SongUpdateRequest) (*music_models.Song, error)
	Delete(ctx context.Context, callerID primitive.ObjectID, id string) error

	FilterSongs(ctx context.Context, filterBy string, genres []string) ([]*music_models.Song, error)
	ByArtist(ctx context.Context, artistID string) ([]*music_models.Song, error)
	LikedSongs(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Song, error)
	DownloadedSongs(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Song, error)

	Play(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.PlayResult, error)
}
