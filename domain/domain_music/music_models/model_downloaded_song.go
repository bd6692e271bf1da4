package music_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DownloadedSong struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	UserID           primitive.ObjectID `bson:"user_id" json:"user"`
	SongID           primitive.ObjectID `bson:"song_id" json:"song"`
	LastDownloadedAt time.Time          `bson:"last_downloaded_at" json:"last_downloaded_at"`
}
