package music_ingest_usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newUser(name string, role music_models.Role) *music_models.UserProfile {
	return &music_models.UserProfile{ID: primitive.NewObjectID(), Username: name, AccountType: role}
}

func TestArtistValidator(t *testing.T) {
	ctx := context.Background()

	t.Run("uploader added when absent", func(t *testing.T) {
		users := new(mocks.UserRepository)
		uploader := newUser("uploader@example.com", music_models.RoleArtist)
		guest := newUser("guest@example.com", music_models.RoleArtist)
		users.On("GetByIDs", mock.Anything, []primitive.ObjectID{guest.ID, uploader.ID}).
			Return([]*music_models.UserProfile{uploader, guest}, nil)

		ids, err := NewArtistValidator(users).Validate(ctx, []string{guest.ID.Hex(), guest.ID.Hex()}, uploader.ID)
		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{guest.ID, uploader.ID}, ids)
		users.AssertExpectations(t)
	})

	t.Run("non artists are all named", func(t *testing.T) {
		users := new(mocks.UserRepository)
		uploader := newUser("uploader@example.com", music_models.RoleArtist)
		listener := newUser("listener@example.com", music_models.RoleUser)
		admin := newUser("admin@example.com", music_models.RoleAdmin)
		missing := primitive.NewObjectID()
		users.On("GetByIDs", mock.Anything, mock.Anything).
			Return([]*music_models.UserProfile{uploader, listener, admin}, nil)

		_, err := NewArtistValidator(users).Validate(ctx,
			[]string{listener.ID.Hex(), admin.ID.Hex(), missing.Hex(), "not-an-id"}, uploader.ID)
		require.Error(t, err)
		assert.True(t, music_models.IsValidationError(err, music_models.KindNotAnArtist))
		assert.Contains(t, err.Error(), "listener@example.com")
		assert.Contains(t, err.Error(), "admin@example.com")
		assert.Contains(t, err.Error(), missing.Hex())
		assert.Contains(t, err.Error(), "not-an-id")
		assert.NotContains(t, err.Error(), "uploader@example.com")
	})

	t.Run("uploader is not an artist", func(t *testing.T) {
		users := new(mocks.UserRepository)
		uploader := newUser("fan@example.com", music_models.RoleUser)
		users.On("GetByIDs", mock.Anything, []primitive.ObjectID{uploader.ID}).
			Return([]*music_models.UserProfile{uploader}, nil)

		_, err := NewArtistValidator(users).Validate(ctx, nil, uploader.ID)
		assert.True(t, music_models.IsValidationError(err, music_models.KindNotAnArtist))
		assert.Contains(t, err.Error(), "fan@example.com")
	})

	t.Run("nobody at all", func(t *testing.T) {
		_, err := NewArtistValidator(new(mocks.UserRepository)).Validate(ctx, nil, primitive.NilObjectID)
		assert.True(t, music_models.IsValidationError(err, music_models.KindNotAnArtist))
	})

	t.Run("lookup failure is not a validation error", func(t *testing.T) {
		users := new(mocks.UserRepository)
		users.On("GetByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		_, err := NewArtistValidator(users).Validate(ctx, nil, primitive.NewObjectID())
		require.Error(t, err)
		_, isValidation := music_models.KindOf(err)
		assert.False(t, isValidation)
	})
}
