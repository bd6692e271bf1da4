package repository_music

import (
	"context"
	"fmt"
	"strings"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	domain.BaseRepository[music_models.UserProfile]
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) music_interface.UserRepository {
	return &userRepository{
		BaseRepository: repository.NewBaseMongoRepository[music_models.UserProfile](db, collection),
		db:             db,
		collection:     collection,
	}
}

func (r *userRepository) Create(ctx context.Context, user *music_models.UserProfile) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := r.BaseRepository.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: email %s", domain.ErrDuplicate, user.Email)
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*music_models.UserProfile, error) {
	if len(ids) == 0 {
		return []*music_models.UserProfile{}, nil
	}
	return r.GetByFilter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*music_models.UserProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := r.GetOneByFilter(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w with email: %s", domain.ErrNotFound, email)
	}
	return user, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role music_models.Role) ([]*music_models.UserProfile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "showed_name", Value: 1}, {Key: "_id", Value: 1}})
	return r.GetByFilter(ctx, bson.M{"account_type": role}, opts)
}

func (r *userRepository) AddFollowing(ctx context.Context, userID, artistID primitive.ObjectID) error {
	_, err := r.UpdateByID(ctx, userID, bson.M{"$addToSet": bson.M{"following_artists": artistID}})
	return err
}

func (r *userRepository) RemoveFollowing(ctx context.Context, userID, artistID primitive.ObjectID) error {
	_, err := r.UpdateByID(ctx, userID, bson.M{"$pull": bson.M{"following_artists": artistID}})
	return err
}
