package routes

import (
	"ambition/internal/handlers"
	"ambition/internal/middleware"
	"ambition/pkg/logger"
	"ambition/pkg/storage"

	"github.com/gin-gonic/gin"
)

func SetupProfileRoutes(
	r *gin.RouterGroup,
	userHandler *handlers.UserHandler,
	driverHandler *handlers.DriverHandler,
	store storage.Provider,
	maxUploadMB int,
	jwtSecret string,
	log *logger.Logger,
) {
	users := r.Group("/users")
	users.Use(middleware.AuthRequired(jwtSecret), middleware.UserRequired())
	{
		users.GET("/me", userHandler.GetProfile)
		users.PUT("/me", middleware.UploadImages(store, maxUploadMB, log), userHandler.UpdateProfile)
	}

	drivers := r.Group("/drivers")
	drivers.Use(middleware.AuthRequired(jwtSecret))
	{
		drivers.GET("/:id", driverHandler.Get)
	}

	driversSelf := r.Group("/drivers")
	driversSelf.Use(middleware.AuthRequired(jwtSecret), middleware.DriverRequired())
	{
		driversSelf.GET("/me/profile", driverHandler.GetProfile)
		driversSelf.PUT("/me/profile", middleware.UploadImages(store, maxUploadMB, log), driverHandler.UpdateProfile)
		driversSelf.PUT("/me/location", driverHandler.UpdateLocation)
		driversSelf.PUT("/me/status", driverHandler.UpdateStatus)
	}
}
