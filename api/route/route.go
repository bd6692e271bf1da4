package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/middleware"
	"github.com/rhythmiq/rhythmiq-server/api/route/route_music"
	"github.com/rhythmiq/rhythmiq-server/bootstrap"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/util/media_store"
)

func Setup(env *bootstrap.Env, db mongo.Database, store *media_store.Store, router *gin.Engine) {
	timeout := env.Timeout()

	mediaRouter := router.Group(bootstrap.MediaURLPrefix)
	for _, category := range []string{media_store.CategorySongs, media_store.CategoryCovers} {
		mediaRouter.StaticFS("/"+category, store.HTTPDir(category))
	}

	publicRouter := router.Group("/api")
	protectedRouter := router.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	artistRouter := router.Group("/api")
	artistRouter.Use(
		middleware.JwtAuthMiddleware(env.AccessTokenSecret),
		middleware.RequireRole(music_models.RoleArtist),
	)
	adminRouter := router.Group("/api")
	adminRouter.Use(
		middleware.JwtAuthMiddleware(env.AccessTokenSecret),
		middleware.RequireRole(music_models.RoleAdmin),
	)

	route_music.NewAccountRouter(env, timeout, db, publicRouter, protectedRouter)
	route_music.NewSongRouter(env, timeout, db, store, route_music.SongGroups{
		Public:    publicRouter,
		Protected: protectedRouter,
		Artist:    artistRouter,
	})
	route_music.NewLibraryRouter(timeout, db, protectedRouter)
	route_music.NewPlaylistRouter(timeout, db, store, protectedRouter)
	route_music.NewGenreRouter(timeout, db, publicRouter, adminRouter)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "route not found"})
	})
}
