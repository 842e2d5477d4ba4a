package handlers

import (
	"ambition/internal/services"
	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "profile retrieved", user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := ownerID(c)
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

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "profile updated", nil)
}
