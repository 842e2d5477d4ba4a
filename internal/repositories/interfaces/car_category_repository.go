package interfaces

import (
	"context"

	"ambition/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarCategoryRepository interface {
	Create(ctx context.Context, category *models.CarCategory) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CarCategory, error)
	GetAll(ctx context.Context) ([]*models.CarCategory, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
