package interfaces

import (
	"context"

	"ambition/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error)
	GetAll(ctx context.Context) ([]*models.Item, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
