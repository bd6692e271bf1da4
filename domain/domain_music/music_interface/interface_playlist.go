package music_interface

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *music_models.Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.Playlist, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ListVisible 自己创建的与公开的歌单
	ListVisible(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Playlist, error)

	AddSongs(ctx context.Context, id primitive.ObjectID, songIDs []primitive.ObjectID) error
	RemoveSongEverywhere(ctx context.Context, songID primitive.ObjectID) error
	AddFollower(ctx context.Context, id, userID primitive.ObjectID) error
	RemoveFollower(ctx context.Context, id, userID primitive.ObjectID) error
}

type PlaylistUsecase interface {
	Create(ctx context.Context, userID primitive.ObjectID, req *music_models.PlaylistRequest) (*music_models.Playlist, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]*music_models.Playlist, error)
	Get(ctx context.Context, userID primitive.ObjectID, id string) (*music_models.Playlist, error)
	Update(ctx context.Context, userID primitive.ObjectID, id string, req *music_models.PlaylistRequest) (*music_models.Playlist, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id string) error

	AddSongs(ctx context.Context, userID primitive.ObjectID, id string, songIDs []string) (*music_models.Playlist, error)
	GetSongs(ctx context.Context, userID primitive.ObjectID, id string) ([]*music_models.Song, error)
	Follow(ctx context.Context, userID primitive.ObjectID, id string) error
	Unfollow(ctx context.Context, userID primitive.ObjectID, id string) error
}
