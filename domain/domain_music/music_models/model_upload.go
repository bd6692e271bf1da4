package music_models

import (
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadCandidate 上传的原始字节流与声明文件名，仅在校验流程中存在
type UploadCandidate struct {
	Filename string
	Content  io.Reader
}

type SongIngestRequest struct {
	Name        string
	Description string
	Audio       *UploadCandidate
	Cover       *UploadCandidate
	ArtistIDs   []string
	Genres      []string
	UploaderID  primitive.ObjectID
}

// RelevanceScore 单次搜索内的歌曲得分
type RelevanceScore struct {
	Song  *Song
	Score int
}
