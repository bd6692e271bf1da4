package music_ingest_usecase

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/tcolgate/mp3"
)

const (
	MimeMPEG = "audio/mpeg"
	MimeWAV  = "audio/wav"
	MimeXWAV = "audio/x-wav"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
)

var (
	allowedAudio = map[string]bool{MimeMPEG: true, MimeWAV: true, MimeXWAV: true}
	allowedImage = map[string]bool{MimeJPEG: true, MimePNG: true}
)

// InferType 由扩展名推断 MIME 类型，未知返回空串
func InferType(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "":
		return ""
	case "jpeg", "jpe":
		ext = "jpg"
	case "wave":
		ext = "wav"
	}
	kind := filetype.GetType(ext)
	if kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// SniffAudio 扩展名白名单 + MPEG 帧同步检查，完成后流位置复位
func SniffAudio(r io.ReadSeeker, filename string) (string, error) {
	mime := InferType(filename)
	if !allowedAudio[mime] {
		return "", music_models.NewValidationError(music_models.KindInvalidFormat,
			"unsupported audio format %q: only mp3 and wav are accepted", filepath.Ext(filename))
	}

	if mime == MimeMPEG {
		var (
			frame   mp3.Frame
			skipped int
		)
		if err := mp3.NewDecoder(r).Decode(&frame, &skipped); err != nil {
			return "", music_models.WrapValidationError(music_models.KindInvalidFormat, err,
				"%s is not a valid mp3 stream", filename)
		}
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind audio: %w", err)
	}
	return mime, nil
}

// SniffImage 扩展名与文件头同时校验，空内容由调用方视为未上传
func SniffImage(r io.ReadSeeker, filename string) (string, error) {
	mime := InferType(filename)
	if !allowedImage[mime] {
		return "", music_models.NewValidationError(music_models.KindInvalidFormat,
			"unsupported image format %q: only jpeg and png are accepted", filepath.Ext(filename))
	}

	head := make([]byte, 261)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read image header: %w", err)
	}
	kind, _ := filetype.Match(head[:n])
	if !allowedImage[kind.MIME.Value] {
		return "", music_models.NewValidationError(music_models.KindInvalidFormat,
			"%s does not contain jpeg or png data", filename)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind image: %w", err)
	}
	return mime, nil
}
