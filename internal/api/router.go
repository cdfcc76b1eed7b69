package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/handover-backend-go/internal/handler"
	"github.com/jengzang/handover-backend-go/internal/logging"
	"github.com/jengzang/handover-backend-go/internal/middleware"
	"github.com/jengzang/handover-backend-go/internal/observability"
	"github.com/jengzang/handover-backend-go/internal/service"
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Handover    *service.HandoverService
	Events      *service.EventService
	Metrics     *observability.Collector
	Logger      logging.Logger
	RateLimiter *middleware.RateLimiter // nil disables rate limiting
	JWTSecret   []byte
}

// SetupRouter 设置路由
func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Handover visualizer API is running",
		})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	handoverHandler := handler.NewHandoverHandler(d.Handover)
	renderHandler := handler.NewRenderHandler(d.Handover)
	eventHandler := handler.NewEventHandler(d.Events)

	// API 路由组
	api := r.Group("/api/v1")
	if d.RateLimiter != nil {
		api.Use(middleware.RateLimit(d.RateLimiter))
	}
	{
		api.GET("/scene", handoverHandler.GetScene)
		api.GET("/position", handoverHandler.GetPosition)
		api.GET("/coverage", handoverHandler.GetCoverage)
		api.GET("/sweep", handoverHandler.GetSweep)
		api.GET("/a3", handoverHandler.GetA3)
		api.POST("/a3", handoverHandler.PostA3)

		events := api.Group("/events")
		{
			events.GET("", eventHandler.GetEvents)
			events.POST("/reload", middleware.RequireJWT(d.JWTSecret), eventHandler.ReloadEvents)
		}
	}

	// 服务端渲染
	viz := r.Group("/viz")
	{
		viz.GET("/scene.png", renderHandler.GetImage("png"))
		viz.GET("/scene.svg", renderHandler.GetImage("svg"))
		viz.GET("/scene.html", renderHandler.GetPage)
	}

	return r
}
