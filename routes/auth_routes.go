package routes

import (
	"ambition/internal/handlers"
	"ambition/internal/middleware"
	"ambition/pkg/logger"
	"ambition/pkg/storage"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler, store storage.Provider, maxUploadMB int, log *logger.Logger) {
	auth := r.Group("/auth")
	{
		auth.POST("/users/register", middleware.UploadImages(store, maxUploadMB, log), authHandler.RegisterUser)
		auth.POST("/users/login", authHandler.LoginUser)
		auth.POST("/drivers/register", middleware.UploadImages(store, maxUploadMB, log), authHandler.RegisterDriver)
		auth.POST("/drivers/login", authHandler.LoginDriver)
		auth.POST("/otp/request", authHandler.RequestOTP)
		auth.POST("/otp/verify", authHandler.VerifyOTP)
	}
}
