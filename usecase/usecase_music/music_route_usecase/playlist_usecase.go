package music_route_usecase

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaylistUsecase struct {
	playlists music_interface.PlaylistRepository
	songs     music_interface.SongRepository
	timeout   time.Duration
}

func NewPlaylistUsecase(playlists music_interface.PlaylistRepository, songs music_interface.SongRepository, timeout time.Duration) *PlaylistUsecase {
	return &PlaylistUsecase{playlists: playlists, songs: songs, timeout: timeout}
}

// resolveSongs 过滤非法与不存在的歌曲 id，保持请求顺序
func (uc *PlaylistUsecase) resolveSongs(ctx context.Context, raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	seen := make(map[primitive.ObjectID]bool, len(raw))
	for _, r := range raw {
		oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(r))
		if err != nil || seen[oid] {
			continue
		}
		seen[oid] = true
		ids = append(ids, oid)
	}
	if len(ids) == 0 {
		return ids, nil
	}
	songs, err := uc.songs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	valid := make([]primitive.ObjectID, 0, len(songs))
	for _, s := range orderByIDs(songs, ids, songID) {
		valid = append(valid, s.ID)
	}
	return valid, nil
}

func (uc *PlaylistUsecase) Create(ctx context.Context, userID primitive.ObjectID, req *music_models.PlaylistRequest) (*music_models.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	name := ""
	if req.Name != nil {
		name = domain_util.SanitizeText(*req.Name)
	}
	if name == "" {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Playlist name is required.")
	}
	songs, err := uc.resolveSongs(ctx, req.Songs)
	if err != nil {
		return nil, err
	}

	playlist := &music_models.Playlist{
		Name:        name,
		CreatorUser: userID,
		Private:     req.Private != nil && *req.Private,
		Songs:       songs,
		Followers:   []primitive.ObjectID{},
	}
	if err := uc.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	log.Info("playlist created", "playlist", playlist.ID.Hex(), "creator", userID.Hex(), "songs", len(songs))
	return playlist, nil
}

func (uc *PlaylistUsecase) List(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.playlists.ListVisible(ctx, userID)
}

// visible 私有歌单对他人表现为不存在
func (uc *PlaylistUsecase) visible(ctx context.Context, userID primitive.ObjectID, id string) (*music_models.Playlist, error) {
	oid, err := parseID(id, "playlist id")
	if err != nil {
		return nil, err
	}
	playlist, err := uc.playlists.GetByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, "Playlist not found.")
	}
	if !playlist.VisibleTo(userID) {
		return nil, music_models.NewValidationError(music_models.KindNotFound, "Playlist not found.")
	}
	return playlist, nil
}

func (uc *PlaylistUsecase) owned(ctx context.Context, userID primitive.ObjectID, id string) (*music_models.Playlist, error) {
	playlist, err := uc.visible(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if playlist.CreatorUser != userID {
		return nil, music_models.NewValidationError(music_models.KindForbidden, "Only the creator can modify this playlist.")
	}
	return playlist, nil
}

func (uc *PlaylistUsecase) Get(ctx context.Context, userID primitive.ObjectID, id string) (*music_models.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.visible(ctx, userID, id)
}

func (uc *PlaylistUsecase) Update(ctx context.Context, userID primitive.ObjectID, id string, req *music_models.PlaylistRequest) (*music_models.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Name != nil {
		name := domain_util.SanitizeText(*req.Name)
		if name == "" {
			return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Playlist name is required.")
		}
		set["name"] = name
	}
	if req.Private != nil {
		set["private"] = *req.Private
	}
	if req.Songs != nil {
		songs, err := uc.resolveSongs(ctx, req.Songs)
		if err != nil {
			return nil, err
		}
		set["songs"] = songs
	}
	if len(set) == 0 {
		return playlist, nil
	}
	if _, err := uc.playlists.UpdateByID(ctx, playlist.ID, bson.M{"$set": set}); err != nil {
		return nil, notFound(err, "Playlist not found.")
	}
	updated, err := uc.playlists.GetByID(ctx, playlist.ID)
	if err != nil {
		return nil, notFound(err, "Playlist not found.")
	}
	return updated, nil
}

func (uc *PlaylistUsecase) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := uc.playlists.Delete(ctx, playlist.ID); err != nil {
		return notFound(err, "Playlist not found.")
	}
	return nil
}

// AddSongs 已在歌单中的歌曲不会重复添加
func (uc *PlaylistUsecase) AddSongs(ctx context.Context, userID primitive.ObjectID, id string, songIDs []string) (*music_models.Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	songs, err := uc.resolveSongs(ctx, songIDs)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "No valid songs found")
	}
	if err := uc.playlists.AddSongs(ctx, playlist.ID, songs); err != nil {
		return nil, notFound(err, "Playlist not found.")
	}
	updated, err := uc.playlists.GetByID(ctx, playlist.ID)
	if err != nil {
		return nil, notFound(err, "Playlist not found.")
	}
	return updated, nil
}

func (uc *PlaylistUsecase) GetSongs(ctx context.Context, userID primitive.ObjectID, id string) ([]*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.visible(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if len(playlist.Songs) == 0 {
		return []*music_models.Song{}, nil
	}
	songs, err := uc.songs.GetByIDs(ctx, playlist.Songs)
	if err != nil {
		return nil, err
	}
	return orderByIDs(songs, playlist.Songs, songID), nil
}

func (uc *PlaylistUsecase) Follow(ctx context.Context, userID primitive.ObjectID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	playlist, err := uc.visible(ctx, userID, id)
	if err != nil {
		return err
	}
	if playlist.CreatorUser == userID {
		return music_models.NewValidationError(music_models.KindInvalidArgument, "You cannot follow your own playlist.")
	}
	return uc.playlists.AddFollower(ctx, playlist.ID, userID)
}

func (uc *PlaylistUsecase) Unfollow(ctx context.Context, userID primitive.ObjectID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(id, "playlist id")
	if err != nil {
		return err
	}
	return uc.playlists.RemoveFollower(ctx, oid, userID)
}
