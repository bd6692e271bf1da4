package music_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Like struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user"`
	SongID    primitive.ObjectID `bson:"song_id" json:"song"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
