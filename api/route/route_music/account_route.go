package route_music

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller/controller_music"
	"github.com/rhythmiq/rhythmiq-server/bootstrap"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/rhythmiq/rhythmiq-server/repository/repository_music"
	"github.com/rhythmiq/rhythmiq-server/usecase/usecase_music/music_route_usecase"
)

func NewAccountRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	repo := repository_music.NewUserRepository(db, domain.CollectionUser)
	uc := music_route_usecase.NewAccountUsecase(repo, env.AccessTokenSecret, env.AccessTokenExpiry(), timeout)
	ctrl := controller_music.NewAccountController(uc)

	public.POST("/signup", ctrl.Signup)
	public.POST("/login", ctrl.Login)
	public.GET("/artists", ctrl.ListArtists)
	public.GET("/artists/:id", ctrl.GetArtist)

	protected.POST("/logout", ctrl.Logout)
	protected.GET("/auth/user", ctrl.CurrentUser)

	userGroup := protected.Group("/users")
	{
		userGroup.PATCH("/me", ctrl.UpdateProfile)
		userGroup.GET("/:id", ctrl.GetProfile)
		userGroup.POST("/:id/follow", ctrl.Follow)
		userGroup.DELETE("/:id/follow", ctrl.Unfollow)
	}
}
