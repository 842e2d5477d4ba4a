package handlers

import (
	"ambition/internal/models"
	"ambition/internal/services"
	"ambition/internal/utils"
	"ambition/pkg/realtime"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
	hub                 *realtime.Hub
}

func NewNotificationHandler(notificationService *services.NotificationService, hub *realtime.Hub) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		hub:                 hub,
	}
}

// ServeWS upgrades the connection and hands it to the hub; clients then
// subscribe to the topics they care about.
func (h *NotificationHandler) ServeWS(c *gin.Context) {
	realtime.ServeWS(h.hub, c.Writer, c.Request)
}

type registerTokenBody struct {
	Token    string                `json:"token" binding:"required"`
	DeviceID string                `json:"device_id" binding:"required"`
	Platform models.DevicePlatform `json:"platform" binding:"required"`
}

func (h *NotificationHandler) RegisterDeviceToken(c *gin.Context) {
	var body registerTokenBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}
	if body.Platform != models.PlatformAndroid && body.Platform != models.PlatformIOS {
		utils.BadRequestResponse(c, "platform must be android or ios")
		return
	}

	id, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	token := &models.DeviceToken{
		Token:     body.Token,
		DeviceID:  body.DeviceID,
		Platform:  body.Platform,
		OwnerID:   id,
		OwnerType: ownerType(c),
	}
	if err := h.notificationService.RegisterDeviceToken(c.Request.Context(), token); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "device token registered", nil)
}

func (h *NotificationHandler) RemoveDeviceToken(c *gin.Context) {
	deviceID := c.Param("device_id")
	if deviceID == "" {
		utils.BadRequestResponse(c, "device id is required")
		return
	}

	id, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.notificationService.RemoveDeviceToken(c.Request.Context(), deviceID, id, ownerType(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "device token removed", nil)
}
