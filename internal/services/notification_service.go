package services

import (
	"context"
	"fmt"
	"time"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/pkg/cache"
	"ambition/pkg/logger"
	"ambition/pkg/push"
	"ambition/pkg/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	topicRequestCreated    = "ride_request_created"
	topicRequestAccepted   = "ride_request_accepted_%s"
	topicDriverLocation    = "driver_location_update_%s"
	topicCarDriverLocation = "car_driver_location_update_%s"
)

// NotificationService is the fire-and-forget fan-out: every publish returns
// immediately, failures are logged and dropped, and there is no replay of
// missed events. Accepted events additionally push to the recipients'
// registered devices.
type NotificationService struct {
	hub       realtime.Publisher
	cache     *cache.RedisCache
	tokenRepo interfaces.DeviceTokenRepository
	android   push.Provider
	ios       push.Provider
	logger    *logger.Logger
}

func NewNotificationService(
	hub realtime.Publisher,
	redisCache *cache.RedisCache,
	tokenRepo interfaces.DeviceTokenRepository,
	android push.Provider,
	ios push.Provider,
	log *logger.Logger,
) *NotificationService {
	return &NotificationService{
		hub:       hub,
		cache:     redisCache,
		tokenRepo: tokenRepo,
		android:   android,
		ios:       ios,
		logger:    log,
	}
}

// NotifyCreated announces a new open request to the driver pool.
func (s *NotificationService) NotifyCreated(ctx context.Context, request *models.RideRequest) {
	s.publish(ctx, topicRequestCreated, request)
}

// NotifyAccepted tells the accepting driver and the requesting user that a
// role was filled, carrying the full updated request, and pushes to their
// devices.
func (s *NotificationService) NotifyAccepted(ctx context.Context, request *models.RideRequest, driverID primitive.ObjectID) {
	s.publish(ctx, fmt.Sprintf(topicRequestAccepted, driverID.Hex()), request)
	s.publish(ctx, fmt.Sprintf(topicRequestAccepted, request.UserID.Hex()), request)

	data := map[string]string{
		"ride_request_id": request.ID.Hex(),
		"status":          string(request.Status),
	}
	s.pushToOwner(ctx, request.UserID, models.OwnerTypeUser, "Request accepted", "A driver accepted your request", data)
	s.pushToOwner(ctx, driverID, models.OwnerTypeDriver, "Job confirmed", "You are assigned to this job", data)
}

// NotifyDriverLocation fans a vehicle driver's position out to the driver and
// user topics. Updates are suppressed unless the request still has an active
// assignment.
func (s *NotificationService) NotifyDriverLocation(ctx context.Context, request *models.RideRequest, location models.Location) {
	if !request.Status.IsActiveAssignment() || request.DriverID == nil {
		return
	}

	payload := locationPayload(request, location)
	s.publish(ctx, fmt.Sprintf(topicDriverLocation, request.DriverID.Hex()), payload)
	s.publish(ctx, fmt.Sprintf(topicDriverLocation, request.UserID.Hex()), payload)
}

// NotifyCarDriverLocation is the car-role counterpart of NotifyDriverLocation.
func (s *NotificationService) NotifyCarDriverLocation(ctx context.Context, request *models.RideRequest, location models.Location) {
	if !request.Status.IsActiveAssignment() || request.CarDriverID == nil {
		return
	}

	payload := locationPayload(request, location)
	s.publish(ctx, fmt.Sprintf(topicCarDriverLocation, request.CarDriverID.Hex()), payload)
	s.publish(ctx, fmt.Sprintf(topicCarDriverLocation, request.UserID.Hex()), payload)
}

// RegisterDeviceToken records a push target, replacing any previous token for
// the same device and owner.
func (s *NotificationService) RegisterDeviceToken(ctx context.Context, token *models.DeviceToken) error {
	token.LastActive = time.Now()
	if token.CreatedAt.IsZero() {
		token.CreatedAt = token.LastActive
	}

	if err := s.tokenRepo.Upsert(ctx, token); err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}
	return nil
}

func (s *NotificationService) RemoveDeviceToken(ctx context.Context, deviceID string, ownerID primitive.ObjectID, ownerType models.OwnerType) error {
	return s.tokenRepo.Delete(ctx, deviceID, ownerID, ownerType)
}

func (s *NotificationService) publish(ctx context.Context, topic string, payload interface{}) {
	s.hub.Publish(topic, payload)

	if s.cache == nil {
		return
	}
	publishCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.cache.Publish(publishCtx, topic, payload); err != nil {
		s.logger.WithError(err).WithField("topic", topic).Warn("failed to mirror event to redis")
	}
}

func (s *NotificationService) pushToOwner(ctx context.Context, ownerID primitive.ObjectID, ownerType models.OwnerType, title, body string, data map[string]string) {
	tokens, err := s.tokenRepo.GetByOwner(ctx, ownerID, ownerType)
	if err != nil {
		s.logger.WithError(err).WithField("owner_id", ownerID.Hex()).Warn("failed to load device tokens")
		return
	}

	for _, token := range tokens {
		provider := s.android
		if token.Platform == models.PlatformIOS {
			provider = s.ios
		}
		if provider == nil {
			continue
		}

		message := &push.Message{
			Token:    token.Token,
			Title:    title,
			Body:     body,
			Data:     data,
			Priority: "high",
		}
		if _, err := provider.Send(ctx, message); err != nil {
			s.logger.WithError(err).WithField("device_id", token.DeviceID).Warn("failed to send push notification")
		}
	}
}

func locationPayload(request *models.RideRequest, location models.Location) map[string]interface{} {
	return map[string]interface{}{
		"ride_request_id": request.ID.Hex(),
		"status":          request.Status,
		"location":        location,
	}
}
