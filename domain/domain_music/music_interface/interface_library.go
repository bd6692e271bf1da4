package music_interface

import (
	"context"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LikeRepository interface {
	Create(ctx context.Context, like *music_models.Like) error
	Delete(ctx context.Context, userID, songID primitive.ObjectID) (bool, error)
	SongIDsByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
	DeleteBySong(ctx context.Context, songID primitive.ObjectID) error
}

type DownloadRepository interface {
	// Record 不存在则创建，存在则刷新 last_downloaded_at
	Record(ctx context.Context, userID, songID primitive.ObjectID, at time.Time) (*music_models.DownloadedSong, error)
	Delete(ctx context.Context, userID, songID primitive.ObjectID) (bool, error)
	// ListByUser 按 last_downloaded_at 倒序
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*music_models.DownloadedSong, error)
	DeleteBySong(ctx context.Context, songID primitive.ObjectID) error
}

// LibraryUsecase 收藏与下载记录
type LibraryUsecase interface {
	Like(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.Like, error)
	Unlike(ctx context.Context, userID primitive.ObjectID, songID string) error

	RecordDownload(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.DownloadedSong, error)
	ListDownloads(ctx context.Context, userID primitive.ObjectID) ([]*music_models.DownloadedSong, error)
	DeleteDownload(ctx context.Context, userID primitive.ObjectID, songID string) error
}
