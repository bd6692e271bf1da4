package controller_music

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
)

type AccountController struct {
	AccountUsecase music_interface.AccountUsecase
}

func NewAccountController(uc music_interface.AccountUsecase) *AccountController {
	return &AccountController{AccountUsecase: uc}
}

func (c *AccountController) Signup(ctx *gin.Context) {
	var req music_models.SignupRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	if _, err := c.AccountUsecase.Signup(ctx.Request.Context(), &req); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "User created successfully!"})
}

func (c *AccountController) Login(ctx *gin.Context) {
	var req music_models.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", "Please provide both email and password")
		return
	}

	resp, err := c.AccountUsecase.Login(ctx.Request.Context(), &req)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout 令牌无状态，客户端丢弃即可
func (c *AccountController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Logout successful."})
}

func (c *AccountController) CurrentUser(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	user, err := c.AccountUsecase.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *AccountController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	user, err := c.AccountUsecase.GetProfile(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *AccountController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req music_models.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	user, err := c.AccountUsecase.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *AccountController) Follow(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.AccountUsecase.Follow(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *AccountController) Unfollow(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := c.AccountUsecase.Unfollow(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *AccountController) ListArtists(ctx *gin.Context) {
	artists, err := c.AccountUsecase.ListArtists(ctx.Request.Context())
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	views := make([]music_models.ArtistView, 0, len(artists))
	for _, a := range artists {
		views = append(views, a.ToArtistView())
	}
	controller.SuccessResponse(ctx, "artists", views, len(views))
}

func (c *AccountController) GetArtist(ctx *gin.Context) {
	artist, err := c.AccountUsecase.GetArtist(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, artist.ToArtistView())
}
