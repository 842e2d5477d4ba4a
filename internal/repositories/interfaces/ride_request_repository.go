package interfaces

import (
	"context"

	"ambition/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideRequestRepository interface {
	Create(ctx context.Context, request *models.RideRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error)
	GetAll(ctx context.Context) ([]*models.RideRequest, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.RideRequest, error)
	GetByDriver(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideRequest, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AssignDriver fills the vehicle-driver role with a single conditional
	// write: it succeeds only while driver_id is null and the request is open,
	// and computes the resulting status in the same update. Losers of a
	// concurrent accept get ErrAlreadyAssigned.
	AssignDriver(ctx context.Context, id, driverID primitive.ObjectID) (*models.RideRequest, error)

	// AssignCarDriver is the symmetric operation for the car-driver role.
	AssignCarDriver(ctx context.Context, id, driverID primitive.ObjectID) (*models.RideRequest, error)

	// UpdateStatusFrom moves the request to a new status only if its current
	// status is one of the allowed set; reports whether the write happened.
	UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, allowed []models.RideRequestStatus, to models.RideRequestStatus) (bool, error)

	SetRolePayment(ctx context.Context, id primitive.ObjectID, role string, payment models.RolePayment) error
}
