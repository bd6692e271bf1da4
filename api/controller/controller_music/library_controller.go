package controller_music

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
)

type songRef struct {
	Song string `json:"song" form:"song"`
}

type LibraryController struct {
	LibraryUsecase music_interface.LibraryUsecase
}

func NewLibraryController(uc music_interface.LibraryUsecase) *LibraryController {
	return &LibraryController{LibraryUsecase: uc}
}

func (c *LibraryController) Like(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req songRef
	_ = ctx.ShouldBind(&req)

	like, err := c.LibraryUsecase.Like(ctx.Request.Context(), userID, req.Song)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, like)
}

func (c *LibraryController) Unlike(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.LibraryUsecase.Unlike(ctx.Request.Context(), userID, ctx.Param("song_id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *LibraryController) RecordDownload(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req songRef
	_ = ctx.ShouldBind(&req)

	record, err := c.LibraryUsecase.RecordDownload(ctx.Request.Context(), userID, req.Song)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

func (c *LibraryController) ListDownloads(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	records, err := c.LibraryUsecase.ListDownloads(ctx.Request.Context(), userID)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "downloads", records, len(records))
}

func (c *LibraryController) DeleteDownload(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.LibraryUsecase.DeleteDownload(ctx.Request.Context(), userID, ctx.Param("song_id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
