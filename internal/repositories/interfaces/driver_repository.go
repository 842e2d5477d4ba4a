package interfaces

import (
	"context"

	"ambition/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	GetByEmail(ctx context.Context, email string) (*models.Driver, error)
	GetByPhone(ctx context.Context, phone string) (*models.Driver, error)
	GetAll(ctx context.Context) ([]*models.Driver, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpdateLocation(ctx context.Context, id primitive.ObjectID, location models.Location) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error
}
