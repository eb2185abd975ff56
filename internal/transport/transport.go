package transport

import (
	"net/http"
	"time"

	"github.com/nutritrack/notification-service/config"
	"github.com/nutritrack/notification-service/internal/service"
	"github.com/nutritrack/notification-service/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

func InitRoutes(usecase service.ReminderUseCase, cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// the cron trigger contract promises 405 for unsupported methods
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	handler := NewReminderHandler(usecase)

	api := router.Group("/api/v1")
	api.Use(middleware.CronAuth(cfg.Cron.Secret))
	{
		api.GET("/notifications/send", handler.TriggerScan)
		api.POST("/notifications/send", handler.TriggerScan)
		api.POST("/notifications/sweep", handler.TriggerSweep)
		api.POST("/notifications/test/:userId", handler.SendTest)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"service":   "notification-service",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	return router
}
