package routes

import (
	"ambition/internal/handlers"
	"ambition/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRideRequestRoutes(r *gin.RouterGroup, rideHandler *handlers.RideRequestHandler, paymentHandler *handlers.PaymentHandler, jwtSecret string) {
	requests := r.Group("/ride-requests")
	requests.Use(middleware.AuthRequired(jwtSecret))
	{
		requests.POST("/", middleware.UserRequired(), rideHandler.Create)
		requests.POST("/suggest-categories", rideHandler.SuggestCategories)
		requests.GET("/mine", middleware.UserRequired(), rideHandler.GetMine)
		requests.GET("/jobs", middleware.DriverRequired(), rideHandler.GetDriverJobs)
		requests.GET("/:id", rideHandler.Get)
		requests.PUT("/:id/accept", middleware.DriverRequired(), rideHandler.Accept)
		requests.PUT("/:id/cancel", rideHandler.Cancel)
		requests.PUT("/:id/complete", middleware.DriverRequired(), rideHandler.Complete)

		requests.POST("/:id/payment-intents", middleware.UserRequired(), paymentHandler.CreateIntent)
		requests.POST("/:id/payments/confirm", middleware.UserRequired(), paymentHandler.ConfirmPayment)
	}
}
