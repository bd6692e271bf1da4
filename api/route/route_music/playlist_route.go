package route_music

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller/controller_music"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository/repository_music"
	"github.com/rhythmiq/rhythmiq-server/usecase/usecase_music/music_route_usecase"
	"github.com/rhythmiq/rhythmiq-server/util/media_store"
)

func NewPlaylistRouter(timeout time.Duration, db mongo.Database, store *media_store.Store, group *gin.RouterGroup) {
	uc := music_route_usecase.NewPlaylistUsecase(
		repository_music.NewPlaylistRepository(db, domain.CollectionPlaylist),
		repository_music.NewSongRepository(db, domain.CollectionSong),
		timeout,
	)
	ctrl := &controller_music.PlaylistController{PlaylistUsecase: uc, MediaURL: store.URL}

	playlistGroup := group.Group("/playlists")
	{
		playlistGroup.GET("", ctrl.List)
		playlistGroup.POST("", ctrl.Create)
		playlistGroup.GET("/:id", ctrl.Get)
		playlistGroup.PATCH("/:id", ctrl.Update)
		playlistGroup.DELETE("/:id", ctrl.Delete)
		playlistGroup.POST("/:id/add_songs", ctrl.AddSongs)
		playlistGroup.GET("/:id/get_songs", ctrl.GetSongs)
		playlistGroup.POST("/:id/follow", ctrl.Follow)
		playlistGroup.DELETE("/:id/follow", ctrl.Unfollow)
	}
}
