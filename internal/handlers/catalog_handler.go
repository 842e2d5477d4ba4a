package handlers

import (
	"ambition/internal/models"
	"ambition/internal/services"
	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.catalogService.CreateItem(c.Request.Context(), &item); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "item created", item)
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid item id")
		return
	}

	item, err := h.catalogService.GetItem(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "item retrieved", item)
}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalogService.ListItems(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "items retrieved", items)
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid item id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.catalogService.UpdateItem(c.Request.Context(), id, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "item updated", nil)
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid item id")
		return
	}

	if err := h.catalogService.DeleteItem(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "item deleted", nil)
}

func (h *CatalogHandler) CreateVehicleCategory(c *gin.Context) {
	var category models.VehicleCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.catalogService.CreateVehicleCategory(c.Request.Context(), &category); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "vehicle category created", category)
}

func (h *CatalogHandler) GetVehicleCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id")
		return
	}

	category, err := h.catalogService.GetVehicleCategory(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "vehicle category retrieved", category)
}

func (h *CatalogHandler) ListVehicleCategories(c *gin.Context) {
	categories, err := h.catalogService.ListVehicleCategories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "vehicle categories retrieved", categories)
}

func (h *CatalogHandler) UpdateVehicleCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.catalogService.UpdateVehicleCategory(c.Request.Context(), id, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "vehicle category updated", nil)
}

func (h *CatalogHandler) DeleteVehicleCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id")
		return
	}

	if err := h.catalogService.DeleteVehicleCategory(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "vehicle category deleted", nil)
}

func (h *CatalogHandler) CreateCarCategory(c *gin.Context) {
	var category models.CarCategory
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.catalogService.CreateCarCategory(c.Request.Context(), &category); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "car category created", category)
}

func (h *CatalogHandler) ListCarCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCarCategories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "car categories retrieved", categories)
}

func (h *CatalogHandler) GetCarCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id")
		return
	}

	category, err := h.catalogService.GetCarCategory(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "car category retrieved", category)
}

func (h *CatalogHandler) UpdateCarCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id")
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.catalogService.UpdateCarCategory(c.Request.Context(), id, updates); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "car category updated", nil)
}

func (h *CatalogHandler) DeleteCarCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid category id")
		return
	}

	if err := h.catalogService.DeleteCarCategory(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "car category deleted", nil)
}
