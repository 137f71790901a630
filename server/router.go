package server

import (
	"net/http"
	"time"

	"finflix/domain/repository"
	httpHandler "finflix/interfaces/http"
	"finflix/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	User       httpHandler.IUserHandler
	Video      httpHandler.IVideoHandler
	Creator    httpHandler.ICatalogHandler
	Category   httpHandler.ICatalogHandler
	Collection httpHandler.ICollectionHandler
	Playlist   httpHandler.IPlaylistHandler
	Health     httpHandler.IHealthHandler
}

type RouterOptions struct {
	SecretKey    string
	AllowOrigins []string
}

func InitiateRouter(h Handlers, userRepository repository.IUser, opts RouterOptions) *gin.Engine {
	httpHandler.RegisterValidators()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Recovery())
	router.Use(cors.New(corsConfig(opts.AllowOrigins)))

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
	router.GET("/healthz", h.Health.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.User.SignUp)
		auth.POST("/admin-signup", h.User.AdminSignUp)
		auth.POST("/login", h.User.Login)
	}

	authenticated := middleware.Auth(opts.SecretKey)
	admin := middleware.AdminAuth(userRepository)

	video := router.Group("/video")
	{
		video.GET("/all", h.Video.GetAll)
		video.GET("/:id", h.Video.GetById)
		video.POST("", authenticated, admin, h.Video.Create)
		video.PUT("/:id", authenticated, admin, h.Video.Update)
	}

	category := router.Group("/category", authenticated, admin)
	{
		category.POST("", h.Category.Create)
		category.GET("/all", h.Category.GetAll)
		category.GET("/:id", h.Category.GetById)
		category.PUT("/:id", h.Category.Update)
	}

	creator := router.Group("/creator", authenticated, admin)
	{
		creator.POST("", h.Creator.Create)
		creator.GET("/all", h.Creator.GetAll)
		creator.GET("/:id", h.Creator.GetById)
		creator.PUT("/:id", h.Creator.Update)
	}

	user := router.Group("/user", authenticated)
	{
		user.GET("/liked-videos", h.Collection.GetLiked)
		user.POST("/like", h.Collection.Like)
		user.POST("/dislike", h.Collection.Dislike)

		user.GET("/watch-later", h.Collection.GetWatchLater)
		user.POST("/watch-later", h.Collection.AddWatchLater)
		user.DELETE("/watch-later", h.Collection.RemoveWatchLater)

		user.GET("/history", h.Collection.GetHistory)
		user.DELETE("/history", h.Collection.ClearHistory)
		user.POST("/history/:videoId", h.Collection.AddHistory)
		user.DELETE("/history/:videoId", h.Collection.RemoveHistory)

		user.GET("/playlist", h.Playlist.GetAll)
		user.POST("/playlist", h.Playlist.Create)
		user.GET("/playlist/:playlistId", h.Playlist.GetById)
		user.DELETE("/playlist/:playlistId", h.Playlist.Delete)
		user.POST("/playlist/:playlistId/:videoId", h.Playlist.AddVideo)
		user.DELETE("/playlist/:playlistId/:videoId", h.Playlist.RemoveVideo)
	}

	return router
}

// corsConfig allows the configured origins with credentials. No origins or a
// lone "*" opens the API to every origin, without credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
