package music_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserProfile struct {
	ID                 primitive.ObjectID   `bson:"_id" json:"id"`
	Username           string               `bson:"username" json:"username"`
	Email              string               `bson:"email" json:"email"`
	PasswordHash       string               `bson:"password_hash" json:"-"`
	ShowedName         string               `bson:"showed_name" json:"showed_name"`
	ProfilePicturePath string               `bson:"profile_picture_path,omitempty" json:"profile_picture_path,omitempty"`
	Private            bool                 `bson:"private" json:"private"`
	AccountType        Role                 `bson:"account_type" json:"account_type"`
	FollowingArtists   []primitive.ObjectID `bson:"following_artists" json:"following_artists"`
	CreatedAt          time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time            `bson:"updated_at" json:"updated_at"`
}

func (u *UserProfile) IsArtist() bool {
	return u != nil && u.AccountType == RoleArtist
}

// DisplayName 错误信息中使用的用户标识
func (u *UserProfile) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.ID.Hex()
}

// ArtistView 艺术家公开信息
type ArtistView struct {
	ID                 primitive.ObjectID `json:"id"`
	ShowedName         string             `json:"showed_name"`
	ProfilePicturePath string             `json:"profile_picture_path,omitempty"`
	AccountType        Role               `json:"account_type"`
}

func (u *UserProfile) ToArtistView() ArtistView {
	return ArtistView{
		ID:                 u.ID,
		ShowedName:         u.ShowedName,
		ProfilePicturePath: u.ProfilePicturePath,
		AccountType:        u.AccountType,
	}
}

type SignupRequest struct {
	ShowedName  string `form:"showed_name" json:"showed_name"`
	Email       string `form:"email" json:"email"`
	Password    string `form:"password" json:"password"`
	AccountType string `form:"account_type" json:"account_type"`
	Visibility  string `form:"visibility" json:"visibility"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type ProfileUpdateRequest struct {
	ShowedName *string `json:"showed_name"`
	Private    *bool   `json:"private"`
}
