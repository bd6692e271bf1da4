package controller_music

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
)

type PlaylistController struct {
	PlaylistUsecase music_interface.PlaylistUsecase
	MediaURL        func(string) string
}

func (c *PlaylistController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req music_models.PlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	playlist, err := c.PlaylistUsecase.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, playlist)
}

func (c *PlaylistController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	playlists, err := c.PlaylistUsecase.List(ctx.Request.Context(), userID)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "playlists", playlists, len(playlists))
}

func (c *PlaylistController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	playlist, err := c.PlaylistUsecase.Get(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, playlist)
}

func (c *PlaylistController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req music_models.PlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	playlist, err := c.PlaylistUsecase.Update(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, playlist)
}

func (c *PlaylistController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.PlaylistUsecase.Delete(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *PlaylistController) AddSongs(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req struct {
		SongIDs []string `json:"song_ids"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	if _, err := c.PlaylistUsecase.AddSongs(ctx.Request.Context(), userID, ctx.Param("id"), req.SongIDs); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Songs added to playlist"})
}

func (c *PlaylistController) GetSongs(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	songs, err := c.PlaylistUsecase.GetSongs(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	views := make([]music_models.SongView, 0, len(songs))
	for _, s := range songs {
		views = append(views, s.ToView(c.MediaURL))
	}
	ctx.JSON(http.StatusOK, gin.H{"songs": views})
}

func (c *PlaylistController) Follow(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.PlaylistUsecase.Follow(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *PlaylistController) Unfollow(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.PlaylistUsecase.Unfollow(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
