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

func NewLibraryRouter(timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	uc := music_route_usecase.NewLibraryUsecase(
		repository_music.NewSongRepository(db, domain.CollectionSong),
		repository_music.NewLikeRepository(db, domain.CollectionLike),
		repository_music.NewDownloadRepository(db, domain.CollectionDownloadedSong),
		timeout,
	)
	ctrl := controller_music.NewLibraryController(uc)

	likeGroup := group.Group("/favoritesongs")
	{
		likeGroup.POST("", ctrl.Like)
		likeGroup.DELETE("/:song_id", ctrl.Unlike)
	}

	downloadGroup := group.Group("/downloadedsongs")
	{
		downloadGroup.GET("", ctrl.ListDownloads)
		downloadGroup.POST("", ctrl.RecordDownload)
		downloadGroup.DELETE("/:song_id", ctrl.DeleteDownload)
	}
}
