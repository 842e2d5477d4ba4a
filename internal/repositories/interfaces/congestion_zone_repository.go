package interfaces

import (
	"context"

	"ambition/internal/models"
)

type CongestionZoneRepository interface {
	Create(ctx context.Context, zone *models.CongestionZone) error
	GetAll(ctx context.Context) ([]*models.CongestionZone, error)

	// ContainsPoint reports whether any active zone contains the point.
	ContainsPoint(ctx context.Context, lat, lng float64) (bool, error)
}
