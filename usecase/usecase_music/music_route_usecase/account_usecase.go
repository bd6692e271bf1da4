package music_route_usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
	"github.com/rhythmiq/rhythmiq-server/internal/tokenutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AccountUsecase struct {
	users   music_interface.UserRepository
	secret  string
	expiry  time.Duration
	timeout time.Duration
}

func NewAccountUsecase(users music_interface.UserRepository, secret string, expiry, timeout time.Duration) *AccountUsecase {
	return &AccountUsecase{
		users:   users,
		secret:  secret,
		expiry:  expiry,
		timeout: timeout,
	}
}

func (uc *AccountUsecase) Signup(ctx context.Context, req *music_models.SignupRequest) (*music_models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	name := domain_util.SanitizeText(req.ShowedName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	validations := []func() error{
		func() error {
			if name == "" {
				return music_models.NewValidationError(music_models.KindInvalidArgument, "Showed name is required.")
			}
			return nil
		},
		func() error {
			if !strings.Contains(email, "@") || domain_util.ContainsInvalidChars(email) {
				return music_models.NewValidationError(music_models.KindInvalidArgument, "A valid email is required.")
			}
			return nil
		},
		func() error {
			if req.Password == "" {
				return music_models.NewValidationError(music_models.KindInvalidArgument, "Password is required.")
			}
			return nil
		},
	}
	for _, validate := range validations {
		if err := validate(); err != nil {
			return nil, err
		}
	}

	role := music_models.RoleUser
	if strings.TrimSpace(req.AccountType) != "" {
		parsed, err := music_models.ParseRole(req.AccountType)
		if err != nil || parsed == music_models.RoleAdmin {
			return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Invalid account type.")
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &music_models.UserProfile{
		Username:         email,
		Email:            email,
		PasswordHash:     string(hash),
		ShowedName:       name,
		Private:          strings.EqualFold(strings.TrimSpace(req.Visibility), "true"),
		AccountType:      role,
		FollowingArtists: []primitive.ObjectID{},
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, music_models.NewValidationError(music_models.KindConflict, "User with this email already exists.")
		}
		return nil, err
	}

	log.Info("user signed up", "user", user.ID.Hex(), "role", role)
	return user, nil
}

func (uc *AccountUsecase) Login(ctx context.Context, req *music_models.LoginRequest) (*music_models.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Please provide both email and password")
	}

	invalid := music_models.NewValidationError(music_models.KindUnauthorized, "Invalid email or password.")
	user, err := uc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, invalid
	}

	token, err := tokenutil.CreateAccessToken(user, uc.secret, uc.expiry)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}
	return &music_models.LoginResponse{Token: token, User: user}, nil
}

func (uc *AccountUsecase) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*music_models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found.")
	}
	return user, nil
}

// GetProfile 本人或公开资料可见
func (uc *AccountUsecase) GetProfile(ctx context.Context, viewerID primitive.ObjectID, id string) (*music_models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(id, "user id")
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, "User not found.")
	}
	if user.Private && user.ID != viewerID {
		return nil, music_models.NewValidationError(music_models.KindForbidden, "This profile is private.")
	}
	return user, nil
}

func (uc *AccountUsecase) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *music_models.ProfileUpdateRequest) (*music_models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	set := bson.M{}
	if req.ShowedName != nil {
		name := domain_util.SanitizeText(*req.ShowedName)
		if name == "" {
			return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "Showed name is required.")
		}
		set["showed_name"] = name
	}
	if req.Private != nil {
		set["private"] = *req.Private
	}
	if len(set) > 0 {
		if _, err := uc.users.UpdateByID(ctx, userID, bson.M{"$set": set}); err != nil {
			return nil, notFound(err, "User not found.")
		}
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "User not found.")
	}
	return user, nil
}

func (uc *AccountUsecase) Follow(ctx context.Context, userID primitive.ObjectID, artistID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(artistID, "artist id")
	if err != nil {
		return err
	}
	if oid == userID {
		return music_models.NewValidationError(music_models.KindInvalidArgument, "You cannot follow yourself.")
	}
	artist, err := uc.users.GetByID(ctx, oid)
	if err != nil {
		return notFound(err, "Artist not found.")
	}
	if !artist.IsArtist() {
		return music_models.NewValidationError(music_models.KindInvalidArgument, "Only artists can be followed.")
	}
	return uc.users.AddFollowing(ctx, userID, oid)
}

func (uc *AccountUsecase) Unfollow(ctx context.Context, userID primitive.ObjectID, artistID string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(artistID, "artist id")
	if err != nil {
		return err
	}
	return uc.users.RemoveFollowing(ctx, userID, oid)
}

func (uc *AccountUsecase) ListArtists(ctx context.Context) ([]*music_models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.users.ListByRole(ctx, music_models.RoleArtist)
}

func (uc *AccountUsecase) GetArtist(ctx context.Context, id string) (*music_models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	oid, err := parseID(id, "artist id")
	if err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, "Artist not found.")
	}
	if !user.IsArtist() {
		return nil, music_models.NewValidationError(music_models.KindNotFound, "Artist not found.")
	}
	return user, nil
}
