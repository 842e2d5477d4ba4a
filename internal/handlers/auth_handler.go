package handlers

import (
	"ambition/internal/middleware"
	"ambition/internal/models"
	"ambition/internal/services"
	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerUserBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var body registerUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	user := &models.User{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
	}
	if urls, ok := uploadedFiles(c); ok {
		user.Profile = urls["profile"]
	}

	if err := h.authService.RegisterUser(c.Request.Context(), user, body.Password); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "user registered", user)
}

type registerDriverBody struct {
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Phone    string           `json:"phone" binding:"required"`
	Password string           `json:"password" binding:"required"`
	Car      models.DriverCar `json:"car" binding:"required"`
}

func (h *AuthHandler) RegisterDriver(c *gin.Context) {
	var body registerDriverBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	driver := &models.Driver{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
		Car:   body.Car,
	}
	if urls, ok := uploadedFiles(c); ok {
		driver.Profile = urls["profile"]
		driver.NationalIDFront = urls["national_id_front"]
		driver.NationalIDBack = urls["national_id_back"]
		driver.DriverLicenseFront = urls["driver_license_front"]
		driver.DriverLicenseBack = urls["driver_license_back"]
	}

	if err := h.authService.RegisterDriver(c.Request.Context(), driver, body.Password); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "driver registered", driver)
}

type loginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	token, user, err := h.authService.LoginUser(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "login successful", gin.H{"token": token, "user": user})
}

func (h *AuthHandler) LoginDriver(c *gin.Context) {
	var body loginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	token, driver, err := h.authService.LoginDriver(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "login successful", gin.H{"token": token, "driver": driver})
}

type requestOTPBody struct {
	Phone     string           `json:"phone" binding:"required"`
	OwnerType models.OwnerType `json:"owner_type" binding:"required"`
}

func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var body requestOTPBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.authService.RequestOTP(c.Request.Context(), body.Phone, body.OwnerType); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "verification code sent", nil)
}

type verifyOTPBody struct {
	Phone     string           `json:"phone" binding:"required"`
	Code      string           `json:"code" binding:"required"`
	OwnerType models.OwnerType `json:"owner_type" binding:"required"`
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var body verifyOTPBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	token, err := h.authService.VerifyOTP(c.Request.Context(), body.Phone, body.Code, body.OwnerType)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "phone verified", gin.H{"token": token})
}

func uploadedFiles(c *gin.Context) (map[string]string, bool) {
	value, exists := c.Get(middleware.ContextUploadedFiles)
	if !exists {
		return nil, false
	}
	urls, ok := value.(map[string]string)
	return urls, ok
}
