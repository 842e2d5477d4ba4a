package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ambition/internal/models"
	"ambition/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type rideServiceFixture struct {
	svc           *RideRequestService
	requests      *fakeRideRequestRepo
	items         *fakeItemRepo
	categories    *fakeVehicleCategoryRepo
	carCategories *fakeCarCategoryRepo
	drivers       *fakeDriverRepo
	zones         *fakeZoneRepo
	polylines     *fakePolylineRepo
	hub           *fakeHub
	distance      *fakeDistanceProvider
}

func newRideServiceFixture(t *testing.T) *rideServiceFixture {
	t.Helper()
	log := testLogger(t)

	f := &rideServiceFixture{
		requests:      newFakeRideRequestRepo(),
		items:         newFakeItemRepo(),
		categories:    newFakeVehicleCategoryRepo(),
		carCategories: newFakeCarCategoryRepo(),
		drivers:       newFakeDriverRepo(),
		zones:         &fakeZoneRepo{},
		polylines:     newFakePolylineRepo(),
		hub:           &fakeHub{},
		distance:      &fakeDistanceProvider{distance: "5.2 km", minutes: 10},
	}

	cargo := NewCargoService(f.items, log)
	fares := NewFareService(minRand{}, log)
	notifier := NewNotificationService(f.hub, nil, &fakeDeviceTokenRepo{}, nil, nil, log)

	f.svc = NewRideRequestService(
		f.requests, f.items, f.categories, f.carCategories, f.drivers, f.zones, f.polylines,
		cargo, fares, f.distance, notifier,
		time.Second, log,
	)
	// Pin the clock to midday so the night surcharge never kicks in.
	f.svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}

	return f
}

func (f *rideServiceFixture) seedCategory(t *testing.T) *models.VehicleCategory {
	t.Helper()
	category := pinnedCategory()
	require.NoError(t, f.categories.Create(context.Background(), category))
	return category
}

func (f *rideServiceFixture) createInput(categoryID primitive.ObjectID) CreateRideRequestInput {
	return CreateRideRequestInput{
		UserID:            primitive.NewObjectID(),
		VehicleCategoryID: categoryID,
		MoveType:          "Home Move",
		Pickup:            models.NewPoint(51.5072, -0.1276),
		Dropoff:           models.NewPoint(51.4545, -0.9787),
	}
}

func TestCreateRideRequest(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	box := &models.Item{Name: "Parcel", ItemType: models.BucketExtraSmall, Length: 0.2, Width: 0.2, Height: 0.2, Weight: 5}
	require.NoError(t, f.items.Create(context.Background(), box))

	input := f.createInput(category.ID)
	input.Items = []models.ItemRef{{ItemID: box.ID, Quantity: 1}}
	input.PolylinePoints = []models.PolylinePoint{{Lat: 51.5, Lng: -0.12}, {Lat: 51.45, Lng: -0.97}}

	request, err := f.svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, request.Status)
	assert.Equal(t, "5.2 km", request.Distance)
	assert.Equal(t, 10, request.EstimatedTime)

	// Pinned draws: 1.00 initial + 2.50 service + 5.00 time + 2.00 item.
	assert.Equal(t, 10.50, request.Fare.Total)
	assert.Equal(t, models.PaymentStateUnpaid, request.VehiclePayment.State)
	assert.Equal(t, 10.50, request.VehiclePayment.Amount)

	require.NotNil(t, request.PolylineID)
	polyline, err := f.polylines.GetByID(context.Background(), *request.PolylineID)
	require.NoError(t, err)
	assert.Len(t, polyline.Points, 2)

	assert.Contains(t, f.hub.topics(), "ride_request_created")
}

func TestCreateWithCarRole(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	carCategory := &models.CarCategory{Name: "Standard", BaseFare: models.PriceBand{Min: 10.00, Max: 10.00}}
	require.NoError(t, f.carCategories.Create(context.Background(), carCategory))

	input := f.createInput(category.ID)
	input.CarCategoryID = &carCategory.ID
	input.IsRideAndMove = true

	request, err := f.svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, request.HasCarRole())
	assert.Equal(t, 10.00, request.Fare.CarBaseFare)
	assert.Equal(t, models.PaymentStateUnpaid, request.CarPayment.State)
	assert.Equal(t, 10.00, request.CarPayment.Amount)
}

func TestCreateAppliesCongestionCharge(t *testing.T) {
	f := newRideServiceFixture(t)
	f.zones.inZone = true
	category := f.seedCategory(t)

	request, err := f.svc.Create(context.Background(), f.createInput(category.ID))
	require.NoError(t, err)

	assert.Equal(t, utils.CongestionCharge, request.Fare.CongestionCharge)
}

func TestCreateUpstreamTimeout(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)
	f.distance.err = context.DeadlineExceeded

	_, err := f.svc.Create(context.Background(), f.createInput(category.ID))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrTimedOut))
}

func TestCreateUpstreamUnavailable(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)
	f.distance.err = errors.New("dns failure")

	_, err := f.svc.Create(context.Background(), f.createInput(category.ID))
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUpstreamUnavailable))
}

func TestCreateValidatesInput(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	input := f.createInput(category.ID)
	input.Pickup = models.Location{}
	_, err := f.svc.Create(context.Background(), input)
	assert.True(t, utils.IsInvalidArgument(err))

	input = f.createInput(category.ID)
	input.PassengersCount = -1
	_, err = f.svc.Create(context.Background(), input)
	assert.True(t, utils.IsInvalidArgument(err))
}

// N drivers race to accept the same request: exactly one wins, everyone else
// gets ErrAlreadyAssigned and the winner is the driver left on the request.
func TestAssignDriverSingleWinner(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	request := &models.RideRequest{
		UserID:            primitive.NewObjectID(),
		VehicleCategoryID: category.ID,
		Status:            models.StatusPending,
	}
	require.NoError(t, f.requests.Create(context.Background(), request))

	const contenders = 8
	driverIDs := make([]primitive.ObjectID, contenders)
	for i := range driverIDs {
		driver := &models.Driver{Car: models.DriverCar{CategoryID: category.ID}}
		require.NoError(t, f.drivers.Create(context.Background(), driver))
		driverIDs[i] = driver.ID
	}

	results := make([]error, contenders)
	var wg sync.WaitGroup
	for i := range driverIDs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.AssignDriver(context.Background(), request.ID, driverIDs[i])
			results[i] = err
		}(i)
	}
	wg.Wait()

	var wins int
	var winner primitive.ObjectID
	for i, err := range results {
		if err == nil {
			wins++
			winner = driverIDs[i]
			continue
		}
		assert.True(t, utils.IsAlreadyAssigned(err), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, wins)

	final, err := f.requests.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, final.Status)
	require.NotNil(t, final.DriverID)
	assert.Equal(t, winner, *final.DriverID)
}

// A driver whose category matches neither role is rejected without touching
// the request.
func TestAssignDriverCategoryMismatch(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	request := &models.RideRequest{
		UserID:            primitive.NewObjectID(),
		VehicleCategoryID: category.ID,
		Status:            models.StatusPending,
	}
	require.NoError(t, f.requests.Create(context.Background(), request))

	driver := &models.Driver{Car: models.DriverCar{CategoryID: primitive.NewObjectID()}}
	require.NoError(t, f.drivers.Create(context.Background(), driver))

	_, err := f.svc.AssignDriver(context.Background(), request.ID, driver.ID)
	require.Error(t, err)
	assert.True(t, utils.IsCategoryMismatch(err))

	final, getErr := f.requests.GetByID(context.Background(), request.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusPending, final.Status)
	assert.Nil(t, final.DriverID)
}

func TestAssignDriverDisabled(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	request := &models.RideRequest{
		UserID:            primitive.NewObjectID(),
		VehicleCategoryID: category.ID,
		Status:            models.StatusPending,
	}
	require.NoError(t, f.requests.Create(context.Background(), request))

	driver := &models.Driver{Disabled: true, Car: models.DriverCar{CategoryID: category.ID}}
	require.NoError(t, f.drivers.Create(context.Background(), driver))

	_, err := f.svc.AssignDriver(context.Background(), request.ID, driver.ID)
	assert.True(t, utils.IsInvalidArgument(err))
}

// A combined job needs both roles filled before it is accepted, in either
// order.
func TestAssignBothRoles(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	carCategory := &models.CarCategory{Name: "Standard", BaseFare: models.PriceBand{Min: 10, Max: 10}}
	require.NoError(t, f.carCategories.Create(context.Background(), carCategory))

	request := &models.RideRequest{
		UserID:            primitive.NewObjectID(),
		VehicleCategoryID: category.ID,
		CarCategoryID:     &carCategory.ID,
		Status:            models.StatusPending,
	}
	require.NoError(t, f.requests.Create(context.Background(), request))

	vehicleDriver := &models.Driver{Car: models.DriverCar{CategoryID: category.ID}}
	carDriver := &models.Driver{Car: models.DriverCar{CategoryID: carCategory.ID}}
	require.NoError(t, f.drivers.Create(context.Background(), vehicleDriver))
	require.NoError(t, f.drivers.Create(context.Background(), carDriver))

	updated, err := f.svc.AssignDriver(context.Background(), request.ID, vehicleDriver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDriverAccepted, updated.Status)

	updated, err = f.svc.AssignDriver(context.Background(), request.ID, carDriver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
	require.NotNil(t, updated.DriverID)
	require.NotNil(t, updated.CarDriverID)
	assert.Equal(t, vehicleDriver.ID, *updated.DriverID)
	assert.Equal(t, carDriver.ID, *updated.CarDriverID)
}

func TestCancelAndCompleteGuards(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	pending := &models.RideRequest{VehicleCategoryID: category.ID, Status: models.StatusPending}
	accepted := &models.RideRequest{VehicleCategoryID: category.ID, Status: models.StatusAccepted}
	completed := &models.RideRequest{VehicleCategoryID: category.ID, Status: models.StatusCompleted}
	for _, request := range []*models.RideRequest{pending, accepted, completed} {
		require.NoError(t, f.requests.Create(context.Background(), request))
	}

	// Pending can be canceled but not completed.
	assert.True(t, utils.IsInvalidArgument(f.svc.Complete(context.Background(), pending.ID)))
	require.NoError(t, f.svc.Cancel(context.Background(), pending.ID))

	// Canceled is terminal.
	assert.True(t, utils.IsInvalidArgument(f.svc.Cancel(context.Background(), pending.ID)))

	// Accepted can be completed; completed is terminal.
	require.NoError(t, f.svc.Complete(context.Background(), accepted.ID))
	assert.True(t, utils.IsInvalidArgument(f.svc.Cancel(context.Background(), completed.ID)))
	assert.True(t, utils.IsInvalidArgument(f.svc.Complete(context.Background(), completed.ID)))
}

// Earnings are re-derived from each completed job's stored fare; jobs in other
// states and jobs where the category no longer matches contribute nothing.
func TestGetByDriverEarnings(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	driver := &models.Driver{Car: models.DriverCar{CategoryID: category.ID}}
	require.NoError(t, f.drivers.Create(context.Background(), driver))

	fare := models.Fare{InitialServiceFee: 1.00, ServiceFee: 2.50, TimeFare: 5.00, ItemBasedPricing: 6.00}

	completed := &models.RideRequest{
		VehicleCategoryID: category.ID,
		DriverID:          &driver.ID,
		Status:            models.StatusCompleted,
		Fare:              fare,
	}
	inFlight := &models.RideRequest{
		VehicleCategoryID: category.ID,
		DriverID:          &driver.ID,
		Status:            models.StatusAccepted,
		Fare:              fare,
	}
	mismatched := &models.RideRequest{
		VehicleCategoryID: primitive.NewObjectID(),
		DriverID:          &driver.ID,
		Status:            models.StatusCompleted,
		Fare:              fare,
	}
	for _, request := range []*models.RideRequest{completed, inFlight, mismatched} {
		require.NoError(t, f.requests.Create(context.Background(), request))
	}

	requests, earnings, err := f.svc.GetByDriver(context.Background(), driver.ID)
	require.NoError(t, err)

	assert.Len(t, requests, 3)
	// 80% of the completed job's 14.50 vehicle side.
	assert.Equal(t, 11.60, earnings)
}

func TestGetByIDPopulatesItems(t *testing.T) {
	f := newRideServiceFixture(t)
	category := f.seedCategory(t)

	box := &models.Item{Name: "Parcel", ItemType: models.BucketExtraSmall, Length: 0.2, Width: 0.2, Height: 0.2, Weight: 5}
	require.NoError(t, f.items.Create(context.Background(), box))

	request := &models.RideRequest{
		VehicleCategoryID: category.ID,
		Status:            models.StatusPending,
		Items:             []models.ItemRef{{ItemID: box.ID, Quantity: 2}},
	}
	require.NoError(t, f.requests.Create(context.Background(), request))

	loaded, err := f.svc.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	require.Len(t, loaded.PopulatedItems, 1)
	assert.Equal(t, "Parcel", loaded.PopulatedItems[0].Name)
}
