package controller_music

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
)

type GenreController struct {
	GenreUsecase music_interface.GenreUsecase
}

func NewGenreController(uc music_interface.GenreUsecase) *GenreController {
	return &GenreController{GenreUsecase: uc}
}

func (c *GenreController) List(ctx *gin.Context) {
	genres, err := c.GenreUsecase.List(ctx.Request.Context())
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	controller.SuccessResponse(ctx, "genres", genres, len(genres))
}

func (c *GenreController) Get(ctx *gin.Context) {
	genre, err := c.GenreUsecase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, genre)
}

func (c *GenreController) Create(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" form:"name"`
	}
	_ = ctx.ShouldBind(&req)

	genre, err := c.GenreUsecase.Create(ctx.Request.Context(), req.Name)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, genre)
}
