package music_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayGuardWindow 同一用户同一歌曲的播放计数去重窗口
const PlayGuardWindow = 30 * time.Second

type PlayGuard struct {
	UserID    primitive.ObjectID `bson:"user_id"`
	SongID    primitive.ObjectID `bson:"song_id"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

const (
	PlayStatusRecorded        = "recorded"
	PlayStatusAlreadyRecorded = "already recorded"
)

type PlayResult struct {
	Status           string `json:"status"`
	StreamingNumbers int    `json:"streaming_numbers"`
}
