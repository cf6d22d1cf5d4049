package router

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Anmol-Srv/blog-api/config"
	_ "github.com/Anmol-Srv/blog-api/docs"
	"github.com/Anmol-Srv/blog-api/internal/api/handler"
	"github.com/Anmol-Srv/blog-api/internal/api/middleware"
)

// New 组装 gin 引擎：中间件 + 全部路由
func New(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Telemetry.Enabled {
		r.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Rate.RPS > 0 {
		r.Use(middleware.RateLimit(cfg.Rate.RPS, cfg.Rate.Burst))
	}

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes 注册业务路由，测试可以直接挂在裸引擎上
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	profiles := r.Group("/profiles")
	{
		profiles.POST("", h.CreateProfile)
		profiles.GET("/:userId", h.GetProfile)
		profiles.PUT("/:userId", h.UpdateProfile)
		profiles.DELETE("/:userId", h.DeleteProfile)
	}

	posts := r.Group("/posts")
	{
		posts.POST("", h.CreatePost)
		posts.GET("", h.ListPosts)
		posts.GET("/:id", h.GetPost)
		posts.PUT("/:id", h.UpdatePost)
		posts.DELETE("/:id", h.DeletePost)
		// gin 要求同一位置的路径参数同名，这里沿用 :id
		posts.POST("/:id/tags", h.AttachTag)
		posts.DELETE("/:id/tags", h.DetachTag)
	}

	tags := r.Group("/tags")
	{
		tags.POST("", h.CreateTag)
		tags.GET("", h.ListTags)
		tags.PUT("/:id", h.UpdateTag)
		tags.DELETE("/:id", h.DeleteTag)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
