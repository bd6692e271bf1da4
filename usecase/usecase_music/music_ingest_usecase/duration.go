package music_ingest_usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/wav"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/tcolgate/mp3"
)

// ExtractDuration 解码得到播放时长，截断到整秒
func ExtractDuration(r io.ReadSeeker, mime string) (time.Duration, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind audio: %w", err)
	}

	var (
		d   time.Duration
		err error
	)
	switch mime {
	case MimeMPEG:
		d, err = mpegDuration(r)
	case MimeWAV, MimeXWAV:
		d, err = wavDuration(r)
	default:
		return 0, music_models.NewValidationError(music_models.KindInvalidFormat, "unsupported audio type %s", mime)
	}
	if err != nil {
		return 0, music_models.WrapValidationError(music_models.KindExtractionFailed, err, "could not read audio duration")
	}

	d = d.Truncate(time.Second)
	if d <= 0 {
		return 0, music_models.NewValidationError(music_models.KindExtractionFailed, "audio stream has zero length")
	}
	if d > music_models.MaxSongDuration {
		return 0, music_models.NewValidationError(music_models.KindDurationExceeded,
			"audio is %d seconds long, the limit is %d seconds",
			int(d/time.Second), int(music_models.MaxSongDuration/time.Second))
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("rewind audio: %w", err)
	}
	return d, nil
}

func mpegDuration(r io.Reader) (time.Duration, error) {
	var (
		frame   mp3.Frame
		skipped int
		total   time.Duration
		frames  int
	)
	dec := mp3.NewDecoder(r)
	for {
		err := dec.Decode(&frame, &skipped)
		if err != nil {
			// 末尾残帧忽略
			if errors.Is(err, io.EOF) || (errors.Is(err, io.ErrUnexpectedEOF) && frames > 0) {
				break
			}
			return 0, err
		}
		total += frame.Duration()
		frames++
	}
	if frames == 0 {
		return 0, errors.New("no mpeg frames")
	}
	return total, nil
}

func wavDuration(r io.ReadSeeker) (time.Duration, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		if dec.Err() != nil {
			return 0, dec.Err()
		}
		return 0, errors.New("invalid wav header")
	}
	// 解析失败时 Duration 返回 0, nil，由上层按零长度处理
	return dec.Duration()
}
