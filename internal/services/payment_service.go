package services

import (
	"context"
	"fmt"
	"math"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"
	"ambition/pkg/logger"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentRoleVehicle = "vehicle"
	PaymentRoleCar     = "car"
)

// PaymentService creates one Stripe payment intent per role of a job; the
// vehicle side and the car side of a combined job are paid separately.
type PaymentService struct {
	requestRepo interfaces.RideRequestRepository
	currency    string
	logger      *logger.Logger
}

func NewPaymentService(requestRepo interfaces.RideRequestRepository, secretKey, currency string, log *logger.Logger) *PaymentService {
	stripe.Key = secretKey

	return &PaymentService{
		requestRepo: requestRepo,
		currency:    currency,
		logger:      log,
	}
}

// CreateRoleIntent opens a payment intent for one role's amount and records
// it on the request's payment sub-record.
func (s *PaymentService) CreateRoleIntent(ctx context.Context, requestID primitive.ObjectID, role string) (*stripe.PaymentIntent, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	payment, err := rolePayment(request, role)
	if err != nil {
		return nil, err
	}
	if payment.State == models.PaymentStatePaid {
		return nil, utils.InvalidArgumentf("%s side of request %s is already paid", role, requestID.Hex())
	}
	if payment.Amount <= 0 {
		return nil, utils.InvalidArgumentf("%s side of request %s has no amount due", role, requestID.Hex())
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(payment.Amount * 100))),
		Currency: stripe.String(s.currency),
	}
	params.AddMetadata("ride_request_id", requestID.Hex())
	params.AddMetadata("role", role)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	payment.State = models.PaymentStatePending
	payment.PaymentIntentID = intent.ID
	if err := s.requestRepo.SetRolePayment(ctx, requestID, role, payment); err != nil {
		return nil, err
	}

	return intent, nil
}

// MarkPaid flips a role's payment state after the gateway confirms the charge.
func (s *PaymentService) MarkPaid(ctx context.Context, requestID primitive.ObjectID, role string) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	payment, err := rolePayment(request, role)
	if err != nil {
		return err
	}

	payment.State = models.PaymentStatePaid
	return s.requestRepo.SetRolePayment(ctx, requestID, role, payment)
}

func rolePayment(request *models.RideRequest, role string) (models.RolePayment, error) {
	switch role {
	case PaymentRoleVehicle:
		return request.VehiclePayment, nil
	case PaymentRoleCar:
		if !request.HasCarRole() {
			return models.RolePayment{}, utils.InvalidArgumentf("request %s has no car role", request.ID.Hex())
		}
		return request.CarPayment, nil
	default:
		return models.RolePayment{}, utils.InvalidArgumentf("unknown payment role %q", role)
	}
}
