package controller_music

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
)

// 超出部分写入临时文件
const multipartMemory = 8 << 20

type SongController struct {
	SongUsecase    music_interface.SongUsecase
	IngestUsecase  music_interface.IngestUsecase
	SearchUsecase  music_interface.SearchUsecase
	MediaURL       func(string) string
	MaxUploadBytes int64
}

func (c *SongController) views(songs []*music_models.Song) []music_models.SongView {
	out := make([]music_models.SongView, 0, len(songs))
	for _, s := range songs {
		out = append(out, s.ToView(c.MediaURL))
	}
	return out
}

func (c *SongController) respondSongs(ctx *gin.Context, songs []*music_models.Song, err error) {
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	views := c.views(songs)
	controller.SuccessResponse(ctx, "songs", views, len(views))
}

func (c *SongController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	if c.MaxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.MaxUploadBytes)
	}
	if err := ctx.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			controller.ErrorResponse(ctx, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "upload exceeds the size limit")
			return
		}
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", "expected multipart/form-data")
		return
	}
	defer func() {
		if ctx.Request.MultipartForm != nil {
			_ = ctx.Request.MultipartForm.RemoveAll()
		}
	}()

	audio, audioCloser, err := formUpload(ctx, "song_path")
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	defer closeUpload(audioCloser)
	cover, coverCloser, err := formUpload(ctx, "cover_image_path")
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	defer closeUpload(coverCloser)

	song, err := c.IngestUsecase.Ingest(ctx.Request.Context(), &music_models.SongIngestRequest{
		Name:        ctx.PostForm("name"),
		Description: ctx.PostForm("description"),
		Audio:       audio,
		Cover:       cover,
		ArtistIDs:   formList(ctx, "artists"),
		Genres:      formList(ctx, "genres"),
		UploaderID:  userID,
	})
	if err != nil {
		if kind, ok := music_models.KindOf(err); ok {
			log.Info("upload rejected", "user", userID.Hex(), "kind", kind)
		}
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, song.ToView(c.MediaURL))
}

func (c *SongController) List(ctx *gin.Context) {
	start, errStart := strconv.Atoi(ctx.DefaultQuery("start", "0"))
	end, errEnd := strconv.Atoi(ctx.DefaultQuery("end", "0"))
	if errStart != nil || errEnd != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", "start and end must be integers")
		return
	}

	songs, err := c.SongUsecase.List(ctx.Request.Context(), music_models.SongListQuery{
		Start: start,
		End:   end,
		Sort:  ctx.Query("sort"),
		Order: ctx.DefaultQuery("order", "asc"),
	})
	c.respondSongs(ctx, songs, err)
}

func (c *SongController) Get(ctx *gin.Context) {
	song, err := c.SongUsecase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, song.ToView(c.MediaURL))
}

func (c *SongController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req music_models.SongUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	song, err := c.SongUsecase.Update(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, song.ToView(c.MediaURL))
}

func (c *SongController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.SongUsecase.Delete(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *SongController) Search(ctx *gin.Context) {
	songs, err := c.SearchUsecase.Search(ctx.Request.Context(), ctx.Query("q"))
	c.respondSongs(ctx, songs, err)
}

func (c *SongController) FilterSongs(ctx *gin.Context) {
	songs, err := c.SongUsecase.FilterSongs(ctx.Request.Context(), ctx.Query("filter_by"), queryList(ctx, "genres"))
	c.respondSongs(ctx, songs, err)
}

func (c *SongController) FilterByArtist(ctx *gin.Context) {
	songs, err := c.SongUsecase.ByArtist(ctx.Request.Context(), ctx.Query("artist_id"))
	c.respondSongs(ctx, songs, err)
}

func (c *SongController) LikedSongs(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	songs, err := c.SongUsecase.LikedSongs(ctx.Request.Context(), userID)
	c.respondSongs(ctx, songs, err)
}

func (c *SongController) DownloadedSongs(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	songs, err := c.SongUsecase.DownloadedSongs(ctx.Request.Context(), userID)
	c.respondSongs(ctx, songs, err)
}

func (c *SongController) Play(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	result, err := c.SongUsecase.Play(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
