package music_interface

import (
	"context"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *music_models.UserProfile) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*music_models.UserProfile, error)
	// GetByIDs 不存在的 id 直接忽略
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*music_models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*music_models.UserProfile, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	ListByRole(ctx context.Context, role music_models.Role) ([]*music_models.UserProfile, error)

	AddFollowing(ctx context.Context, userID, artistID primitive.ObjectID) error
	RemoveFollowing(ctx context.Context, userID, artistID primitive.ObjectID) error
}

type AccountUsecase interface {
	Signup(ctx context.Context, req *music_models.SignupRequest) (*music_models.UserProfile, error)
	Login(ctx context.Context, req *music_models.LoginRequest) (*music_models.LoginResponse, error)
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*music_models.UserProfile, error)
	GetProfile(ctx context.Context, viewerID primitive.ObjectID, id string) (*music_models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *music_models.ProfileUpdateRequest) (*music_models.UserProfile, error)

	Follow(ctx context.Context, userID primitive.ObjectID, artistID string) error
	Unfollow(ctx context.Context, userID primitive.ObjectID, artistID string) error

	ListArtists(ctx context.Context) ([]*music_models.UserProfile, error)
	GetArtist(ctx context.Context, id string) (*music_models.UserProfile, error)
}
