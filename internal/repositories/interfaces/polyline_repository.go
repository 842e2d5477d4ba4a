package interfaces

import (
	"context"

	"ambition/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PolylineRepository interface {
	Create(ctx context.Context, polyline *models.Polyline) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Polyline, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
