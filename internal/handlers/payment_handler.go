package handlers

import (
	"ambition/internal/services"
	"ambition/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type createIntentBody struct {
	Role string `json:"role" binding:"required"`
}

// CreateIntent opens a payment intent for one role of the job and returns the
// client secret the app confirms the charge with.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid ride request id")
		return
	}

	var body createIntentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	intent, err := h.paymentService.CreateRoleIntent(c.Request.Context(), requestID, body.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "payment intent created", gin.H{
		"payment_intent_id": intent.ID,
		"client_secret":     intent.ClientSecret,
		"amount":            intent.Amount,
	})
}

type confirmPaymentBody struct {
	Role string `json:"role" binding:"required"`
}

func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid ride request id")
		return
	}

	var body confirmPaymentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "invalid request: "+err.Error())
		return
	}

	if err := h.paymentService.MarkPaid(c.Request.Context(), requestID, body.Role); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "payment recorded", nil)
}
