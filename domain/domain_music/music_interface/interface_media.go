package music_interface

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayGuardRepository 播放计数去重
type PlayGuardRepository interface {
	// Acquire 窗口内首次调用返回 true，其余返回 false
	Acquire(ctx context.Context, userID, songID primitive.ObjectID, window time.Duration) (bool, error)
	// Release 撤销本次占用，计数未写入时调用
	Release(ctx context.Context, userID, songID primitive.ObjectID) error
}

// StagedUpload 暂存的上传文件，调用方必须在所有路径上执行 Cleanup
type StagedUpload interface {
	io.Reader
	io.Seeker
	Filename() string
	Size() int64
	Rewind() error
	Cleanup() error
}

// MediaStore 媒体文件存储
type MediaStore interface {
	Stage(src io.Reader, filename string) (StagedUpload, error)
	// Save 写入 category 目录，返回相对路径
	Save(category, ext string, src io.Reader) (string, error)
	Remove(path string) error
	URL(path string) string
}
