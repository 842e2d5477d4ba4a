package handlers

import (
	"ambition/internal/models"
	"ambition/internal/services"
	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverHandler struct {
	driverService *services.DriverService
}

func NewDriverHandler(driverService *services.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

func (h *DriverHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid driver id")
		return
	}

	driver, err := h.driverService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "driver retrieved", driver)
}

func (h *DriverHandler) GetProfile(c *gin.Context) {
	driverID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	driver, err := h.driverService.GetByID(c.Request.Context(), driverID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "profile retrieved", driver)
}

func (h *DriverHandler) UpdateProfile(c *gin.Context) {
	driverID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}
	delete(updates, "password")
	if urls, ok := uploadedFiles(c); ok {
		for field, url := range urls {
			updates[field] = url
		}
	}

	if err := h.driverService.UpdateProfile(c.Request.Context(), driverID, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "profile updated", nil)
}

type updateLocationBody struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

// UpdateLocation stores the driver's position and triggers the location
// fan-out for any active jobs.
func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	driverID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var body updateLocationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.driverService.UpdateLocation(c.Request.Context(), driverID, body.Latitude, body.Longitude); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "location updated", nil)
}

type updateStatusBody struct {
	Status models.DriverStatus `json:"status" binding:"required"`
}

func (h *DriverHandler) UpdateStatus(c *gin.Context) {
	driverID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var body updateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}
	if body.Status != models.DriverStatusOnline && body.Status != models.DriverStatusOffline {
		utils.BadRequestResponse(c, "status must be online or offline")
		return
	}

	if err := h.driverService.UpdateStatus(c.Request.Context(), driverID, body.Status); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "status updated", nil)
}
