package interfaces

import (
	"context"

	"ambition/internal/models"
)

type OTPRepository interface {
	// Upsert replaces any existing code for the phone/owner pair.
	Upsert(ctx context.Context, otp *models.TempOTP) error
	GetByPhone(ctx context.Context, phone string, ownerType models.OwnerType) (*models.TempOTP, error)
	Delete(ctx context.Context, phone string, ownerType models.OwnerType) error
}
