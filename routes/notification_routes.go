package routes

import (
	"ambition/internal/handlers"
	"ambition/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(r *gin.RouterGroup, notificationHandler *handlers.NotificationHandler, jwtSecret string) {
	r.GET("/ws", notificationHandler.ServeWS)

	tokens := r.Group("/device-tokens")
	tokens.Use(middleware.AuthRequired(jwtSecret))
	{
		tokens.POST("/", notificationHandler.RegisterDeviceToken)
		tokens.DELETE("/:device_id", notificationHandler.RemoveDeviceToken)
	}
}
