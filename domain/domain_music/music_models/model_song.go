package music_models

import (
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxSongDuration 上传音频时长上限 59:59
const MaxSongDuration = 3599 * time.Second

type Song struct {
	ID               primitive.ObjectID   `bson:"_id" json:"id"`
	Name             string               `bson:"name" json:"name"`
	Description      string               `bson:"description" json:"description"`
	CoverImagePath   string               `bson:"cover_image_path,omitempty" json:"cover_image_path,omitempty"`
	Mp3Path          string               `bson:"mp3_path" json:"mp3_path"`
	CreatedAt        time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at" json:"updated_at"`
	DurationSeconds  int                  `bson:"duration_seconds" json:"duration_seconds"`
	StreamingNumbers int                  `bson:"streaming_numbers" json:"streaming_numbers"`
	Artists          []primitive.ObjectID `bson:"artists" json:"artists"`
	Genres           []string             `bson:"genres" json:"genres"`
	OrderTitle       string               `bson:"order_title" json:"-"`
}

func (s *Song) Duration() time.Duration {
	return time.Duration(s.DurationSeconds) * time.Second
}

func (s *Song) HasArtist(id primitive.ObjectID) bool {
	for _, a := range s.Artists {
		if a == id {
			return true
		}
	}
	return false
}

// SongView 歌曲对外展示结构
type SongView struct {
	ID               primitive.ObjectID   `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	CoverImageURL    *string              `json:"cover_image_url"`
	Mp3URL           *string              `json:"mp3_url"`
	CreatedAt        time.Time            `json:"created_at"`
	Duration         string               `json:"duration"`
	DurationSeconds  int                  `json:"duration_seconds"`
	StreamingNumbers int                  `json:"streaming_numbers"`
	Artists          []primitive.ObjectID `json:"artists"`
	Genres           []string             `json:"genres"`
}

// ToView mediaURL 将存储路径转换为可访问地址
func (s *Song) ToView(mediaURL func(string) string) SongView {
	view := SongView{
		ID:               s.ID,
		Name:             s.Name,
		Description:      s.Description,
		CreatedAt:        s.CreatedAt,
		Duration:         domain_util.FormatClock(s.Duration()),
		DurationSeconds:  s.DurationSeconds,
		StreamingNumbers: s.StreamingNumbers,
		Artists:          s.Artists,
		Genres:           s.Genres,
	}
	if view.Artists == nil {
		view.Artists = []primitive.ObjectID{}
	}
	if view.Genres == nil {
		view.Genres = []string{}
	}
	if s.CoverImagePath != "" {
		u := mediaURL(s.CoverImagePath)
		view.CoverImageURL = &u
	}
	if s.Mp3Path != "" {
		u := mediaURL(s.Mp3Path)
		view.Mp3URL = &u
	}
	return view
}

// SongUpdateRequest 仅允许修改文本与流派，时长与媒体文件不可变
type SongUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Genres      *[]string `json:"genres"`
}

// SongListQuery 列表分页与排序
type SongListQuery struct {
	Start int
	End   int
	Sort  string
	Order string
}
