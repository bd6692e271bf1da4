package music_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Playlist struct {
	ID             primitive.ObjectID   `bson:"_id" json:"id"`
	Name           string               `bson:"name" json:"name"`
	CoverImagePath string               `bson:"cover_image_path,omitempty" json:"cover_image_path,omitempty"`
	CreatorUser    primitive.ObjectID   `bson:"creator_user" json:"creator_user"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
	Private        bool                 `bson:"private" json:"private"`
	Songs          []primitive.ObjectID `bson:"songs" json:"songs"`
	Followers      []primitive.ObjectID `bson:"followers" json:"followers"`
}

// VisibleTo 创建者或公开歌单可见
func (p *Playlist) VisibleTo(userID primitive.ObjectID) bool {
	return p.CreatorUser == userID || !p.Private
}

type PlaylistRequest struct {
	Name    *string  `json:"name"`
	Private *bool    `json:"private"`
	Songs   []string `json:"songs"`
}
