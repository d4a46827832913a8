package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kratos/kratos/v2/log"
)

// NewRouter 注册全部 HTTP 路由。
func NewRouter(rotation *RotationHandler, engagement *EngagementHandler, maintenance *MaintenanceHandler, logger log.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), accessLog(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/boards/:board_id/pins", rotation.GetBoardPins)
		v1.POST("/pins/:pin_id/impressions", rotation.RecordImpression)
		v1.POST("/pins/:pin_id/clicks", engagement.RecordClick)
		v1.GET("/pins/:pin_id/stats", engagement.GetPinStats)
		v1.POST("/maintenance/impressions/reset", maintenance.ResetImpressions)
	}
	return router
}

func accessLog(logger log.Logger) gin.HandlerFunc {
	helper := log.NewHelper(logger)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		helper.WithContext(c.Request.Context()).Infow(
			"msg", "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
