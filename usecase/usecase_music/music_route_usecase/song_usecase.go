package music_route_usecase

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FilterByViews     = "views"
	FilterByDateViews = "date_views"
	FilterByGenre     = "genre"

	filterLimit = 10
)

// 列表接口允许的排序字段
var songSortFields = map[string]string{
	"name":              "order_title",
	"created_at":        "created_at",
	"streaming_numbers": "streaming_numbers",
	"duration":          "duration_seconds",
}

type SongUsecase struct {
	songs       music_interface.SongRepository
	users       music_interface.UserRepository
	genres      music_interface.GenreRepository
	likes       music_interface.LikeRepository
	downloads   music_interface.DownloadRepository
	playlists   music_interface.PlaylistRepository
	guard       music_interface.PlayGuardRepository
	store       music_interface.MediaStore
	guardWindow time.Duration
	timeout     time.Duration
}

type SongUsecaseDeps struct {
	Songs     music_interface.SongRepository
	Users     music_interface.UserRepository
	Genres    music_interface.GenreRepository
	Likes     music_interface.LikeRepository
	Downloads music_interface.DownloadRepository
	Playlists music_interface.PlaylistRepository
	Guard     music_interface.PlayGuardRepository
	Store     music_interface.MediaStore
}

func NewSongUsecase(deps SongUsecaseDeps, guardWindow, timeout time.Duration) *SongUsecase {
	if guardWindow <= 0 {
		guardWindow = music_models.PlayGuardWindow
	}
	return &SongUsecase{
		songs:       deps.Songs,
		users:       deps.Users,
		genres:      deps.Genres,
		likes:       deps.Likes,
		downloads:   deps.Downloads,
		playlists:   deps.Playlists,
		guard:       deps.Guard,
		store:       deps.Store,
		guardWindow: guardWindow,
		timeout:     timeout,
	}
}

func (uc *SongUsecase) List(ctx context.Context, query music_models.SongListQuery) ([]*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if query.Start < 0 || query.End < 0 {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "start and end must not be negative")
	}
	var limit int64
	if query.End > 0 {
		if query.End <= query.Start {
			return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "end must be greater than start")
		}
		limit = int64(query.End - query.Start)
	}

	order := domain.SortOrder{Sort: query.Sort, Order: query.Order}
	if order.Sort == "" {
		order = domain.SortOrder{Sort: "created_at", Order: "desc"}
	}
	field, ok := songSortFields[order.Sort]
	if !ok {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Invalid sort field: %s.", order.Sort)
	}

	return uc.songs.List(ctx, int64(query.Start), limit, bson.D{{Key: field, Value: order.Direction()}})
}

func (uc *SongUsecase) Get(ctx context.Context, id string) (*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.getSong(ctx, id)
}

func (uc *SongUsecase) getSong(ctx context.Context, id string) (*music_models.Song, error) {
	oid, err := parseID(id, "song id")
	if err != nil {
		return nil, err
	}
	song, err := uc.songs.GetByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, "Song not found.")
	}
	return song, nil
}

// ownedSong 仅歌曲署名艺术家可修改
func (uc *SongUsecase) ownedSong(ctx context.Context, callerID primitive.ObjectID, id string) (*music_models.Song, error) {
	song, err := uc.getSong(ctx, id)
	if err != nil {
		return nil, err
	}
	if !song.HasArtist(callerID) {
		return nil, music_models.NewValidationError(music_models.KindForbidden, "You are not an artist of this song.")
	}
	return song, nil
}

func (uc *SongUsecase) Update(ctx context.Context, callerID primitive.ObjectID, id string, req *music_models.SongUpdateRequest) (*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	song, err := uc.ownedSong(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		name := domain_util.SanitizeText(*req.Name)
		if name == "" {
			return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Song name is required.")
		}
		set["name"] = name
		set["order_title"] = domain_util.OrderTitle(name)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	var genres []string
	if req.Genres != nil {
		genres = domain_util.NormalizeGenres(*req.Genres)
		set["genres"] = genres
	}
	if len(set) == 0 {
		return song, nil
	}

	if _, err := uc.songs.UpdateByID(ctx, song.ID, bson.M{"$set": set}); err != nil {
		return nil, notFound(err, "Song not found.")
	}
	if len(genres) > 0 {
		if err := uc.genres.EnsureNames(ctx, genres); err != nil {
			log.Warn("genre registration failed", "song", song.ID.Hex(), "error", err)
		}
	}
	updated, err := uc.songs.GetByID(ctx, song.ID)
	if err != nil {
		return nil, notFound(err, "Song not found.")
	}
	return updated, nil
}

// Delete 同时清理收藏、下载记录、歌单引用与媒体文件
func (uc *SongUsecase) Delete(ctx context.Context, callerID primitive.ObjectID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	song, err := uc.ownedSong(ctx, callerID, id)
	if err != nil {
		return err
	}
	if err := uc.songs.Delete(ctx, song.ID); err != nil {
		return notFound(err, "Song not found.")
	}

	cascades := []struct {
		name string
		run  func(context.Context, primitive.ObjectID) error
	}{
		{"likes", uc.likes.DeleteBySong},
		{"downloads", uc.downloads.DeleteBySong},
		{"playlists", uc.playlists.RemoveSongEverywhere},
	}
	for _, c := range cascades {
		if err := c.run(ctx, song.ID); err != nil {
			log.Error("song cascade cleanup failed", "song", song.ID.Hex(), "target", c.name, "error", err)
		}
	}
	for _, path := range []string{song.Mp3Path, song.CoverImagePath} {
		if path == "" {
			continue
		}
		if err := uc.store.Remove(path); err != nil {
			log.Warn("media removal failed", "path", path, "error", err)
		}
	}

	log.Info("song deleted", "song", song.ID.Hex(), "by", callerID.Hex())
	return nil
}

func (uc *SongUsecase) FilterSongs(ctx context.Context, filterBy string, genres []string) ([]*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	switch strings.TrimSpace(filterBy) {
	case "":
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "filter_by parameter is required.")
	case FilterByViews:
		return uc.songs.TopByStreaming(ctx, filterLimit)
	case FilterByDateViews:
		return uc.songs.Newest(ctx, filterLimit)
	case FilterByGenre:
		genres = domain_util.NormalizeGenres(genres)
		if len(genres) == 0 {
			return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "genres parameter is required when filter_by is 'genre'.")
		}
		return uc.songs.ByGenreRelevance(ctx, genres, filterLimit)
	default:
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Invalid filter_by value: %s.", filterBy)
	}
}

func (uc *SongUsecase) ByArtist(ctx context.Context, artistID string) ([]*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(artistID) == "" {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "artist_id parameter is required.")
	}
	missing := music_models.NewValidationError(music_models.KindNotFound, "Artist not found or invalid artist ID.")
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(artistID))
	if err != nil {
		return nil, missing
	}
	artist, err := uc.users.GetByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, missing.Message)
	}
	if !artist.IsArtist() {
		return nil, missing
	}
	return uc.songs.ByArtist(ctx, oid)
}

func (uc *SongUsecase) LikedSongs(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	ids, err := uc.likes.SongIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.songsInOrder(ctx, ids)
}

// DownloadedSongs 最近下载的在前
func (uc *SongUsecase) DownloadedSongs(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	records, err := uc.downloads.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.SongID)
	}
	return uc.songsInOrder(ctx, ids)
}

func (uc *SongUsecase) songsInOrder(ctx context.Context, ids []primitive.ObjectID) ([]*music_models.Song, error) {
	if len(ids) == 0 {
		return []*music_models.Song{}, nil
	}
	songs, err := uc.songs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(songs, ids, songID), nil
}

// Play 窗口内重复播放不计数
func (uc *SongUsecase) Play(ctx context.Context, userID primitive.ObjectID, id string) (*music_models.PlayResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	song, err := uc.getSong(ctx, id)
	if err != nil {
		return nil, err
	}

	acquired, err := uc.guard.Acquire(ctx, userID, song.ID, uc.guardWindow)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return &music_models.PlayResult{
			Status:           music_models.PlayStatusAlreadyRecorded,
			StreamingNumbers: song.StreamingNumbers,
		}, nil
	}

	count, err := uc.songs.IncrementStreaming(ctx, song.ID)
	if err != nil {
		if rerr := uc.guard.Release(ctx, userID, song.ID); rerr != nil {
			log.Warn("release play guard failed", "song", song.ID.Hex(), "user", userID.Hex(), "err", rerr)
		}
		return nil, notFound(err, "Song not found.")
	}
	log.Debug("play recorded", "song", song.ID.Hex(), "user", userID.Hex(), "streaming_numbers", count)
	return &music_models.PlayResult{Status: music_models.PlayStatusRecorded, StreamingNumbers: count}, nil
}
