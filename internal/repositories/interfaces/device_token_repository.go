package interfaces

import (
	"context"

	"ambition/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeviceTokenRepository interface {
	// Upsert registers a token, replacing a previous one for the same device
	// and owner.
	Upsert(ctx context.Context, token *models.DeviceToken) error
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID, ownerType models.OwnerType) ([]*models.DeviceToken, error)
	Delete(ctx context.Context, deviceID string, ownerID primitive.ObjectID, ownerType models.OwnerType) error
	TouchByOwner(ctx context.Context, ownerID primitive.ObjectID, ownerType models.OwnerType) error
}
