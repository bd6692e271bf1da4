package route_music

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller/controller_music"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository/repository_music"
	"github.com/rhythmiq/rhythmiq-server/usecase/usecase_music/music_route_usecase"
)

func NewGenreRouter(timeout time.Duration, db mongo.Database, public, admin *gin.RouterGroup) {
	repo := repository_music.NewGenreRepository(db, domain.CollectionGenre)
	ctrl := controller_music.NewGenreController(music_route_usecase.NewGenreUsecase(repo, timeout))

	public.GET("/genres", ctrl.List)
	public.GET("/genres/:id", ctrl.Get)
	admin.POST("/genres", ctrl.Create)
}
