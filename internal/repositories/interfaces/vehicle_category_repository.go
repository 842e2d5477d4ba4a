package interfaces

import (
	"context"

	"ambition/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleCategoryRepository interface {
	Create(ctx context.Context, category *models.VehicleCategory) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error)
	GetAll(ctx context.Context) ([]*models.VehicleCategory, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// FindEligible returns categories whose load volume, payload capacity and
	// passenger capacity all cover the given demand.
	FindEligible(ctx context.Context, totalVolume, totalWeight float64, passengers int) ([]*models.VehicleCategory, error)
}
