package handlers

import (
	"ambition/internal/middleware"
	"ambition/internal/models"
	"ambition/internal/services"
	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideRequestHandler struct {
	requestService  *services.RideRequestService
	cargoService    *services.CargoService
	categoryService *services.CategoryService
}

func NewRideRequestHandler(
	requestService *services.RideRequestService,
	cargoService *services.CargoService,
	categoryService *services.CategoryService,
) *RideRequestHandler {
	return &RideRequestHandler{
		requestService:  requestService,
		cargoService:    cargoService,
		categoryService: categoryService,
	}
}

type createRideRequestBody struct {
	VehicleCategoryID string                 `json:"vehicle_category_id" binding:"required"`
	CarCategoryID     string                 `json:"car_category_id"`
	MoveType          string                 `json:"move_type"`
	Pickup            models.Location        `json:"pickup_location" binding:"required"`
	Dropoff           models.Location        `json:"dropoff_location" binding:"required"`
	Items             []models.ItemRef       `json:"items"`
	CustomItems       []models.CustomItem    `json:"custom_items"`
	Requirements      models.Requirements    `json:"requirements"`
	PassengersCount   int                    `json:"passengers_count"`
	IsRideAndMove     bool                   `json:"is_ride_and_move"`
	IsEventJob        bool                   `json:"is_event_job"`
	PolylinePoints    []models.PolylinePoint `json:"polyline_points"`
}

// Create opens a new pending ride request for the authenticated user.
func (h *RideRequestHandler) Create(c *gin.Context) {
	var body createRideRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	userID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	vehicleCategoryID, err := primitive.ObjectIDFromHex(body.VehicleCategoryID)
	if err != nil {
		utils.BadRequestResponse(c, "invalid vehicle category id")
		return
	}

	input := services.CreateRideRequestInput{
		UserID:            userID,
		VehicleCategoryID: vehicleCategoryID,
		MoveType:          body.MoveType,
		Pickup:            body.Pickup,
		Dropoff:           body.Dropoff,
		Items:             body.Items,
		CustomItems:       body.CustomItems,
		Requirements:      body.Requirements,
		PassengersCount:   body.PassengersCount,
		IsRideAndMove:     body.IsRideAndMove,
		IsEventJob:        body.IsEventJob,
		PolylinePoints:    body.PolylinePoints,
	}
	if body.CarCategoryID != "" {
		carCategoryID, err := primitive.ObjectIDFromHex(body.CarCategoryID)
		if err != nil {
			utils.BadRequestResponse(c, "invalid car category id")
			return
		}
		input.CarCategoryID = &carCategoryID
	}

	request, err := h.requestService.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "ride request created", request)
}

type suggestCategoriesBody struct {
	Pickup             models.Location     `json:"pickup_location" binding:"required"`
	Dropoff            models.Location     `json:"dropoff_location" binding:"required"`
	Items              []models.ItemRef    `json:"items"`
	CustomItems        []models.CustomItem `json:"custom_items"`
	PeopleTaggingAlong int                 `json:"people_tagging_along"`
	RequiredHelpers    int                 `json:"required_helpers"`
	MoveType           string              `json:"move_type"`
}

// SuggestCategories classifies the cargo and ranks the qualifying vehicle
// categories for a prospective request.
func (h *RideRequestHandler) SuggestCategories(c *gin.Context) {
	var body suggestCategoriesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	summary, err := h.cargoService.Classify(c.Request.Context(), body.Items, body.CustomItems)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	suggestion, err := h.categoryService.Select(c.Request.Context(), services.SelectionInput{
		Summary:            summary,
		Pickup:             body.Pickup,
		Dropoff:            body.Dropoff,
		PeopleTaggingAlong: body.PeopleTaggingAlong,
		RequiredHelpers:    body.RequiredHelpers,
		MoveType:           body.MoveType,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "vehicle categories ranked", suggestion)
}

func (h *RideRequestHandler) Get(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid ride request id")
		return
	}

	request, err := h.requestService.GetByID(c.Request.Context(), requestID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "ride request retrieved", request)
}

// GetMine lists the authenticated user's requests.
func (h *RideRequestHandler) GetMine(c *gin.Context) {
	userID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	requests, err := h.requestService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "ride requests retrieved", requests)
}

// GetDriverJobs lists the authenticated driver's jobs with recomputed
// earnings.
func (h *RideRequestHandler) GetDriverJobs(c *gin.Context) {
	driverID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	requests, earnings, err := h.requestService.GetByDriver(c.Request.Context(), driverID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "jobs retrieved", gin.H{
		"requests": requests,
		"earnings": earnings,
	})
}

// Accept fills a role on the request with the authenticated driver.
func (h *RideRequestHandler) Accept(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid ride request id")
		return
	}

	driverID, ok := ownerID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	request, err := h.requestService.AssignDriver(c.Request.Context(), requestID, driverID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "ride request accepted", request)
}

func (h *RideRequestHandler) Cancel(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid ride request id")
		return
	}

	if err := h.requestService.Cancel(c.Request.Context(), requestID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "ride request canceled", nil)
}

func (h *RideRequestHandler) Complete(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid ride request id")
		return
	}

	if err := h.requestService.Complete(c.Request.Context(), requestID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "ride request completed", nil)
}

func ownerID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get(middleware.ContextOwnerID)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := value.(primitive.ObjectID)
	return id, ok
}

func ownerType(c *gin.Context) models.OwnerType {
	value, exists := c.Get(middleware.ContextOwnerType)
	if !exists {
		return ""
	}
	s, _ := value.(string)
	return models.OwnerType(s)
}
