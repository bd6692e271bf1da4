package route_music

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller/controller_music"
	"github.com/rhythmiq/rhythmiq-server/bootstrap"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository/repository_music"
	"github.com/rhythmiq/rhythmiq-server/usecase/usecase_music/music_ingest_usecase"
	"github.com/rhythmiq/rhythmiq-server/usecase/usecase_music/music_route_usecase"
	"github.com/rhythmiq/rhythmiq-server/usecase/usecase_music/music_search_usecase"
	"github.com/rhythmiq/rhythmiq-server/util/media_store"
)

type SongGroups struct {
	Public    *gin.RouterGroup
	Protected *gin.RouterGroup
	Artist    *gin.RouterGroup
}

func NewSongRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	store *media_store.Store,
	groups SongGroups,
) {
	songs := repository_music.NewSongRepository(db, domain.CollectionSong)
	users := repository_music.NewUserRepository(db, domain.CollectionUser)
	genres := repository_music.NewGenreRepository(db, domain.CollectionGenre)

	ctrl := &controller_music.SongController{
		SongUsecase: music_route_usecase.NewSongUsecase(music_route_usecase.SongUsecaseDeps{
			Songs:     songs,
			Users:     users,
			Genres:    genres,
			Likes:     repository_music.NewLikeRepository(db, domain.CollectionLike),
			Downloads: repository_music.NewDownloadRepository(db, domain.CollectionDownloadedSong),
			Playlists: repository_music.NewPlaylistRepository(db, domain.CollectionPlaylist),
			Guard:     repository_music.NewPlayGuardRepository(db, domain.CollectionPlayGuard),
			Store:     store,
		}, env.PlayGuardWindow(), timeout),
		IngestUsecase:  music_ingest_usecase.NewIngestUsecase(songs, users, genres, store, timeout),
		SearchUsecase:  music_search_usecase.NewSearchUsecase(songs, env.SearchCandidateWindow, env.SearchResultLimit, timeout),
		MediaURL:       store.URL,
		MaxUploadBytes: env.MaxUploadBytes(),
	}

	publicGroup := groups.Public.Group("/songs")
	{
		publicGroup.GET("", ctrl.List)
		publicGroup.GET("/search", ctrl.Search)
		publicGroup.GET("/filter_songs", ctrl.FilterSongs)
		publicGroup.GET("/filter_by_artist", ctrl.FilterByArtist)
		publicGroup.GET("/:id", ctrl.Get)
	}

	protectedGroup := groups.Protected.Group("/songs")
	{
		protectedGroup.GET("/liked_songs", ctrl.LikedSongs)
		protectedGroup.GET("/downloaded_songs", ctrl.DownloadedSongs)
		protectedGroup.POST("/:id/play", ctrl.Play)
	}

	artistGroup := groups.Artist.Group("/songs")
	{
		artistGroup.POST("", ctrl.Create)
		artistGroup.PATCH("/:id", ctrl.Update)
		artistGroup.DELETE("/:id", ctrl.Delete)
	}
}
