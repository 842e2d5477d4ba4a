package services

import (
	"context"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriverService maintains the driver directory and forwards location updates
// into the notification fan-out for any jobs the driver currently holds.
type DriverService struct {
	driverRepo  interfaces.DriverRepository
	requestRepo interfaces.RideRequestRepository
	notifier    *NotificationService
	logger      *logger.Logger
}

func NewDriverService(
	driverRepo interfaces.DriverRepository,
	requestRepo interfaces.RideRequestRepository,
	notifier *NotificationService,
	log *logger.Logger,
) *DriverService {
	return &DriverService{
		driverRepo:  driverRepo,
		requestRepo: requestRepo,
		notifier:    notifier,
		logger:      log,
	}
}

func (s *DriverService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *DriverService) GetAll(ctx context.Context) ([]*models.Driver, error) {
	return s.driverRepo.GetAll(ctx)
}

func (s *DriverService) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.driverRepo.Update(ctx, id, updates)
}

func (s *DriverService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error {
	return s.driverRepo.UpdateStatus(ctx, id, status)
}

// UpdateLocation stores the driver's position and fans it out to every job
// where the driver holds an active role. Fan-out errors never fail the update.
func (s *DriverService) UpdateLocation(ctx context.Context, id primitive.ObjectID, lat, lng float64) error {
	location := models.NewPoint(lat, lng)
	if err := s.driverRepo.UpdateLocation(ctx, id, location); err != nil {
		return err
	}

	requests, err := s.requestRepo.GetByDriver(ctx, id)
	if err != nil {
		s.logger.WithError(err).WithField("driver_id", id.Hex()).Warn("failed to load jobs for location fan-out")
		return nil
	}

	for _, request := range requests {
		if !request.Status.IsActiveAssignment() {
			continue
		}
		switch {
		case request.DriverID != nil && *request.DriverID == id:
			s.notifier.NotifyDriverLocation(ctx, request, location)
		case request.CarDriverID != nil && *request.CarDriverID == id:
			s.notifier.NotifyCarDriverLocation(ctx, request, location)
		}
	}

	return nil
}
