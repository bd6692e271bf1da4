package music_route_usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LibraryUsecase 收藏与下载记录
type LibraryUsecase struct {
	songs     music_interface.SongRepository
	likes     music_interface.LikeRepository
	downloads music_interface.DownloadRepository
	now       func() time.Time
	timeout   time.Duration
}

func NewLibraryUsecase(songs music_interface.SongRepository, likes music_interface.LikeRepository, downloads music_interface.DownloadRepository, timeout time.Duration) *LibraryUsecase {
	return &LibraryUsecase{
		songs:     songs,
		likes:     likes,
		downloads: downloads,
		now:       time.Now,
		timeout:   timeout,
	}
}

func (uc *LibraryUsecase) existingSong(ctx context.Context, raw string) (primitive.ObjectID, error) {
	oid, err := parseID(raw, "Song")
	if err != nil {
		return primitive.NilObjectID, err
	}
	if _, err := uc.songs.GetByID(ctx, oid); err != nil {
		return primitive.NilObjectID, notFound(err, "Song not found.")
	}
	return oid, nil
}

func (uc *LibraryUsecase) Like(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := uc.existingSong(ctx, songID)
	if err != nil {
		return nil, err
	}
	like := &music_models.Like{UserID: userID, SongID: oid}
	if err := uc.likes.Create(ctx, like); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "This song is already in your favorites.")
		}
		return nil, err
	}
	return like, nil
}

func (uc *LibraryUsecase) Unlike(ctx context.Context, userID primitive.ObjectID, songID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(songID, "Song")
	if err != nil {
		return err
	}
	deleted, err := uc.likes.Delete(ctx, userID, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return music_models.NewValidationError(music_models.KindNotFound, "This song is not in your favorites.")
	}
	return nil
}

// RecordDownload 重复下载只刷新时间
func (uc *LibraryUsecase) RecordDownload(ctx context.Context, userID primitive.ObjectID, songID string) (*music_models.DownloadedSong, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := uc.existingSong(ctx, songID)
	if err != nil {
		return nil, err
	}
	return uc.downloads.Record(ctx, userID, oid, uc.now().UTC())
}

func (uc *LibraryUsecase) ListDownloads(ctx context.Context, userID primitive.ObjectID) ([]*music_models.DownloadedSong, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.downloads.ListByUser(ctx, userID)
}

func (uc *LibraryUsecase) DeleteDownload(ctx context.Context, userID primitive.ObjectID, songID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(songID, "Song")
	if err != nil {
		return err
	}
	deleted, err := uc.downloads.Delete(ctx, userID, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return music_models.NewValidationError(music_models.KindNotFound, "This song is not in your downloads.")
	}
	return nil
}
