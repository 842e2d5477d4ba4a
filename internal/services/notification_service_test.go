package services

import (
	"context"
	"fmt"
	"testing"

	"ambition/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newNotificationFixture(t *testing.T) (*NotificationService, *fakeHub, *fakeDeviceTokenRepo) {
	t.Helper()
	hub := &fakeHub{}
	tokens := &fakeDeviceTokenRepo{}
	svc := NewNotificationService(hub, nil, tokens, nil, nil, testLogger(t))
	return svc, hub, tokens
}

func TestNotifyCreatedTopic(t *testing.T) {
	svc, hub, _ := newNotificationFixture(t)

	request := &models.RideRequest{ID: primitive.NewObjectID(), Status: models.StatusPending}
	svc.NotifyCreated(context.Background(), request)

	assert.Equal(t, []string{"ride_request_created"}, hub.topics())
}

func TestNotifyAcceptedTopics(t *testing.T) {
	svc, hub, _ := newNotificationFixture(t)

	driverID := primitive.NewObjectID()
	request := &models.RideRequest{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		Status: models.StatusAccepted,
	}
	svc.NotifyAccepted(context.Background(), request, driverID)

	assert.Equal(t, []string{
		fmt.Sprintf("ride_request_accepted_%s", driverID.Hex()),
		fmt.Sprintf("ride_request_accepted_%s", request.UserID.Hex()),
	}, hub.topics())
}

func TestNotifyDriverLocationFanOut(t *testing.T) {
	svc, hub, _ := newNotificationFixture(t)

	driverID := primitive.NewObjectID()
	request := &models.RideRequest{
		ID:       primitive.NewObjectID(),
		UserID:   primitive.NewObjectID(),
		DriverID: &driverID,
		Status:   models.StatusDriverAccepted,
	}
	svc.NotifyDriverLocation(context.Background(), request, models.NewPoint(51.5, -0.1))

	assert.Equal(t, []string{
		fmt.Sprintf("driver_location_update_%s", driverID.Hex()),
		fmt.Sprintf("driver_location_update_%s", request.UserID.Hex()),
	}, hub.topics())
}

func TestNotifyCarDriverLocationFanOut(t *testing.T) {
	svc, hub, _ := newNotificationFixture(t)

	carDriverID := primitive.NewObjectID()
	request := &models.RideRequest{
		ID:          primitive.NewObjectID(),
		UserID:      primitive.NewObjectID(),
		CarDriverID: &carDriverID,
		Status:      models.StatusAccepted,
	}
	svc.NotifyCarDriverLocation(context.Background(), request, models.NewPoint(51.5, -0.1))

	assert.Equal(t, []string{
		fmt.Sprintf("car_driver_location_update_%s", carDriverID.Hex()),
		fmt.Sprintf("car_driver_location_update_%s", request.UserID.Hex()),
	}, hub.topics())
}

// Location updates are suppressed once the job is no longer an active
// assignment, and when the role is unfilled.
func TestNotifyLocationSuppressed(t *testing.T) {
	driverID := primitive.NewObjectID()

	tests := []struct {
		name    string
		request *models.RideRequest
	}{
		{
			name:    "pending request",
			request: &models.RideRequest{DriverID: &driverID, Status: models.StatusPending},
		},
		{
			name:    "completed request",
			request: &models.RideRequest{DriverID: &driverID, Status: models.StatusCompleted},
		},
		{
			name:    "canceled request",
			request: &models.RideRequest{DriverID: &driverID, Status: models.StatusCanceled},
		},
		{
			name:    "role not filled",
			request: &models.RideRequest{Status: models.StatusCarAccepted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, hub, _ := newNotificationFixture(t)
			svc.NotifyDriverLocation(context.Background(), tt.request, models.NewPoint(51.5, -0.1))
			svc.NotifyCarDriverLocation(context.Background(), tt.request, models.NewPoint(51.5, -0.1))
			assert.Empty(t, hub.topics())
		})
	}
}

func TestRegisterDeviceToken(t *testing.T) {
	svc, _, tokens := newNotificationFixture(t)

	token := &models.DeviceToken{
		Token:     "fcm-token",
		DeviceID:  "device-1",
		Platform:  models.PlatformAndroid,
		OwnerID:   primitive.NewObjectID(),
		OwnerType: models.OwnerTypeDriver,
	}
	require.NoError(t, svc.RegisterDeviceToken(context.Background(), token))

	stored, err := tokens.GetByOwner(context.Background(), token.OwnerID, models.OwnerTypeDriver)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].LastActive.IsZero())
	assert.False(t, stored[0].CreatedAt.IsZero())
}
