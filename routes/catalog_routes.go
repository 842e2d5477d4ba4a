package routes

import (
	"ambition/internal/handlers"
	"ambition/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(r *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, jwtSecret string) {
	items := r.Group("/items")
	{
		items.GET("/", catalogHandler.ListItems)
		items.GET("/:id", catalogHandler.GetItem)
	}

	itemsAdmin := r.Group("/items")
	itemsAdmin.Use(middleware.AuthRequired(jwtSecret))
	{
		itemsAdmin.POST("/", catalogHandler.CreateItem)
		itemsAdmin.PUT("/:id", catalogHandler.UpdateItem)
		itemsAdmin.DELETE("/:id", catalogHandler.DeleteItem)
	}

	categories := r.Group("/vehicle-categories")
	{
		categories.GET("/", catalogHandler.ListVehicleCategories)
		categories.GET("/:id", catalogHandler.GetVehicleCategory)
	}

	categoriesAdmin := r.Group("/vehicle-categories")
	categoriesAdmin.Use(middleware.AuthRequired(jwtSecret))
	{
		categoriesAdmin.POST("/", catalogHandler.CreateVehicleCategory)
		categoriesAdmin.PUT("/:id", catalogHandler.UpdateVehicleCategory)
		categoriesAdmin.DELETE("/:id", catalogHandler.DeleteVehicleCategory)
	}

	carCategories := r.Group("/car-categories")
	{
		carCategories.GET("/", catalogHandler.ListCarCategories)
		carCategories.GET("/:id", catalogHandler.GetCarCategory)
	}

	carCategoriesAdmin := r.Group("/car-categories")
	carCategoriesAdmin.Use(middleware.AuthRequired(jwtSecret))
	{
		carCategoriesAdmin.POST("/", catalogHandler.CreateCarCategory)
		carCategoriesAdmin.PUT("/:id", catalogHandler.UpdateCarCategory)
		carCategoriesAdmin.DELETE("/:id", catalogHandler.DeleteCarCategory)
	}
}
