package music_ingest_usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
	"github.com/rhythmiq/rhythmiq-server/util/media_store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IngestUsecase struct {
	songs   music_interface.SongRepository
	genres  music_interface.GenreRepository
	store   music_interface.MediaStore
	artists *ArtistValidator
	timeout time.Duration
}

func NewIngestUsecase(
	songs music_interface.SongRepository,
	users music_interface.UserRepository,
	genres music_interface.GenreRepository,
	store music_interface.MediaStore,
	timeout time.Duration,
) *IngestUsecase {
	return &IngestUsecase{
		songs:   songs,
		genres:  genres,
		store:   store,
		artists: NewArtistValidator(users),
		timeout: timeout,
	}
}

// Ingest 校验全部通过后才写入媒体与记录；暂存文件在任何路径上都会被清理
func (uc *IngestUsecase) Ingest(ctx context.Context, req *music_models.SongIngestRequest) (*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if req == nil || req.Audio == nil || req.Audio.Content == nil {
		return nil, music_models.NewValidationError(music_models.KindMissingUpload, "an audio file is required")
	}

	audio, err := uc.store.Stage(req.Audio.Content, req.Audio.Filename)
	if err != nil {
		return nil, fmt.Errorf("stage audio: %w", err)
	}
	defer uc.cleanup(audio)

	if audio.Size() == 0 {
		return nil, music_models.NewValidationError(music_models.KindMissingUpload, "the audio file is empty")
	}

	mime, err := SniffAudio(audio, req.Audio.Filename)
	if err != nil {
		return nil, err
	}
	duration, err := ExtractDuration(audio, mime)
	if err != nil {
		return nil, err
	}

	var cover music_interface.StagedUpload
	if req.Cover != nil && req.Cover.Content != nil {
		cover, err = uc.store.Stage(req.Cover.Content, req.Cover.Filename)
		if err != nil {
			return nil, fmt.Errorf("stage cover: %w", err)
		}
		defer uc.cleanup(cover)

		if cover.Size() == 0 {
			cover = nil
		} else if _, err := SniffImage(cover, req.Cover.Filename); err != nil {
			return nil, err
		}
	}

	artistIDs, err := uc.artists.Validate(ctx, req.ArtistIDs, req.UploaderID)
	if err != nil {
		return nil, err
	}

	song := &music_models.Song{
		Name:            domain_util.SanitizeText(req.Name),
		Description:     strings.TrimSpace(req.Description),
		DurationSeconds: int(duration / time.Second),
		Artists:         artistIDs,
		Genres:          domain_util.NormalizeGenres(req.Genres),
	}
	uc.applyTagDefaults(song, audio, mime)
	if song.Name == "" {
		return nil, music_models.NewValidationError(music_models.KindInvalidArgument, "name is required")
	}
	song.OrderTitle = domain_util.OrderTitle(song.Name)

	var saved []string
	rollback := func() {
		for _, p := range saved {
			if err := uc.store.Remove(p); err != nil {
				log.Warn("remove orphaned media", "path", p, "err", err)
			}
		}
	}

	if err := audio.Rewind(); err != nil {
		return nil, err
	}
	song.Mp3Path, err = uc.store.Save(media_store.CategorySongs, filepath.Ext(req.Audio.Filename), audio)
	if err != nil {
		return nil, fmt.Errorf("save audio: %w", err)
	}
	saved = append(saved, song.Mp3Path)

	if cover != nil {
		if err := cover.Rewind(); err != nil {
			rollback()
			return nil, err
		}
		song.CoverImagePath, err = uc.store.Save(media_store.CategoryCovers, filepath.Ext(req.Cover.Filename), cover)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("save cover: %w", err)
		}
		saved = append(saved, song.CoverImagePath)
	}

	if err := uc.songs.Create(ctx, song); err != nil {
		rollback()
		return nil, fmt.Errorf("create song: %w", err)
	}

	if len(song.Genres) > 0 {
		if err := uc.genres.EnsureNames(ctx, song.Genres); err != nil {
			log.Warn("register genres", "song", song.ID.Hex(), "err", err)
		}
	}

	log.Info("song ingested",
		"song", song.ID.Hex(),
		"duration", domain_util.FormatClock(duration),
		"artists", len(song.Artists),
		"uploader", hexOrEmpty(req.UploaderID),
	)
	return song, nil
}

func (uc *IngestUsecase) applyTagDefaults(song *music_models.Song, audio music_interface.StagedUpload, mime string) {
	if song.Name != "" && song.Description != "" && len(song.Genres) > 0 {
		return
	}
	tags := readTagDefaults(audio, mime)
	if song.Name == "" {
		song.Name = domain_util.SanitizeText(tags.Title)
	}
	if song.Description == "" {
		song.Description = tags.Comment
	}
	if len(song.Genres) == 0 {
		song.Genres = tags.Genres
	}
}

func (uc *IngestUsecase) cleanup(staged music_interface.StagedUpload) {
	if err := staged.Cleanup(); err != nil {
		log.Warn("remove staged upload", "file", staged.Filename(), "err", err)
	}
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
