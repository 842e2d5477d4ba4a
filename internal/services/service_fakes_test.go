package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"ambition/internal/models"
	"ambition/internal/utils"
	"ambition/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text"})
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return log
}

// minRand always draws the low end of a band, making fares deterministic.
type minRand struct{}

func (minRand) Between(min, max float64) float64 { return utils.Round2(min) }

// maxRand always draws the high end of a band.
type maxRand struct{}

func (maxRand) Between(min, max float64) float64 { return utils.Round2(max) }

type fakeItemRepo struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]*models.Item
}

func newFakeItemRepo(items ...*models.Item) *fakeItemRepo {
	repo := &fakeItemRepo{items: make(map[primitive.ObjectID]*models.Item)}
	for _, item := range items {
		if item.ID.IsZero() {
			item.ID = primitive.NewObjectID()
		}
		repo.items[item.ID] = item
	}
	return repo
}

func (f *fakeItemRepo) Create(ctx context.Context, item *models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	item, ok := f.items[id]
	if !ok {
		return nil, utils.NotFoundf("item %s", id.Hex())
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemRepo) GetAll(ctx context.Context) ([]*models.Item, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*models.Item, 0, len(f.items))
	for _, item := range f.items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

type fakeVehicleCategoryRepo struct {
	mu         sync.RWMutex
	categories map[primitive.ObjectID]*models.VehicleCategory
}

func newFakeVehicleCategoryRepo(categories ...*models.VehicleCategory) *fakeVehicleCategoryRepo {
	repo := &fakeVehicleCategoryRepo{categories: make(map[primitive.ObjectID]*models.VehicleCategory)}
	for _, category := range categories {
		if category.ID.IsZero() {
			category.ID = primitive.NewObjectID()
		}
		repo.categories[category.ID] = category
	}
	return repo
}

func (f *fakeVehicleCategoryRepo) Create(ctx context.Context, category *models.VehicleCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeVehicleCategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, utils.NotFoundf("vehicle category %s", id.Hex())
	}
	copied := *category
	return &copied, nil
}

func (f *fakeVehicleCategoryRepo) GetAll(ctx context.Context) ([]*models.VehicleCategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*models.VehicleCategory, 0, len(f.categories))
	for _, category := range f.categories {
		copied := *category
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeVehicleCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeVehicleCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

func (f *fakeVehicleCategoryRepo) FindEligible(ctx context.Context, totalVolume, totalWeight float64, passengers int) ([]*models.VehicleCategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*models.VehicleCategory
	for _, category := range f.categories {
		if category.LoadVolume >= totalVolume &&
			category.PayloadCapacity >= totalWeight &&
			category.PassengerCapacity >= passengers {
			copied := *category
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeCarCategoryRepo struct {
	mu         sync.RWMutex
	categories map[primitive.ObjectID]*models.CarCategory
}

func newFakeCarCategoryRepo(categories ...*models.CarCategory) *fakeCarCategoryRepo {
	repo := &fakeCarCategoryRepo{categories: make(map[primitive.ObjectID]*models.CarCategory)}
	for _, category := range categories {
		if category.ID.IsZero() {
			category.ID = primitive.NewObjectID()
		}
		repo.categories[category.ID] = category
	}
	return repo
}

func (f *fakeCarCategoryRepo) Create(ctx context.Context, category *models.CarCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCarCategoryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CarCategory, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, utils.NotFoundf("car category %s", id.Hex())
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCarCategoryRepo) GetAll(ctx context.Context) ([]*models.CarCategory, error) {
	return nil, nil
}

func (f *fakeCarCategoryRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeCarCategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

type fakeDriverRepo struct {
	mu      sync.RWMutex
	drivers map[primitive.ObjectID]*models.Driver
}

func newFakeDriverRepo(drivers ...*models.Driver) *fakeDriverRepo {
	repo := &fakeDriverRepo{drivers: make(map[primitive.ObjectID]*models.Driver)}
	for _, driver := range drivers {
		if driver.ID.IsZero() {
			driver.ID = primitive.NewObjectID()
		}
		repo.drivers[driver.ID] = driver
	}
	return repo
}

func (f *fakeDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if driver.ID.IsZero() {
		driver.ID = primitive.NewObjectID()
	}
	f.drivers[driver.ID] = driver
	return nil
}

func (f *fakeDriverRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	driver, ok := f.drivers[id]
	if !ok {
		return nil, utils.NotFoundf("driver %s", id.Hex())
	}
	copied := *driver
	return &copied, nil
}

func (f *fakeDriverRepo) GetByEmail(ctx context.Context, email string) (*models.Driver, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, driver := range f.drivers {
		if driver.Email == email {
			copied := *driver
			return &copied, nil
		}
	}
	return nil, utils.NotFoundf("driver with email %s", email)
}

func (f *fakeDriverRepo) GetByPhone(ctx context.Context, phone string) (*models.Driver, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, driver := range f.drivers {
		if driver.Phone == phone {
			copied := *driver
			return &copied, nil
		}
	}
	return nil, utils.NotFoundf("driver with phone %s", phone)
}

func (f *fakeDriverRepo) GetAll(ctx context.Context) ([]*models.Driver, error) {
	return nil, nil
}

func (f *fakeDriverRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeDriverRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeDriverRepo) UpdateLocation(ctx context.Context, id primitive.ObjectID, location models.Location) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	driver, ok := f.drivers[id]
	if !ok {
		return utils.NotFoundf("driver %s", id.Hex())
	}
	driver.Location = location
	return nil
}

func (f *fakeDriverRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	driver, ok := f.drivers[id]
	if !ok {
		return utils.NotFoundf("driver %s", id.Hex())
	}
	driver.Status = status
	return nil
}

// fakeRideRequestRepo mirrors the conditional-write semantics of the mongo
// repository with a mutexed compare-and-set, so assignment races behave the
// same way in tests.
type fakeRideRequestRepo struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]*models.RideRequest
}

func newFakeRideRequestRepo(requests ...*models.RideRequest) *fakeRideRequestRepo {
	repo := &fakeRideRequestRepo{requests: make(map[primitive.ObjectID]*models.RideRequest)}
	for _, request := range requests {
		if request.ID.IsZero() {
			request.ID = primitive.NewObjectID()
		}
		repo.requests[request.ID] = request
	}
	return repo
}

func (f *fakeRideRequestRepo) Create(ctx context.Context, request *models.RideRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	if request.Status == "" {
		request.Status = models.StatusPending
	}
	copied := *request
	f.requests[request.ID] = &copied
	return nil
}

func (f *fakeRideRequestRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, utils.NotFoundf("ride request %s", id.Hex())
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRideRequestRepo) GetAll(ctx context.Context) ([]*models.RideRequest, error) {
	return nil, nil
}

func (f *fakeRideRequestRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.RideRequest
	for _, request := range f.requests {
		if request.UserID == userID {
			copied := *request
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRideRequestRepo) GetByDriver(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.RideRequest
	for _, request := range f.requests {
		if (request.DriverID != nil && *request.DriverID == driverID) ||
			(request.CarDriverID != nil && *request.CarDriverID == driverID) {
			copied := *request
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRideRequestRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeRideRequestRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (f *fakeRideRequestRepo) AssignDriver(ctx context.Context, id, driverID primitive.ObjectID) (*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return nil, utils.NotFoundf("ride request %s", id.Hex())
	}

	open := request.Status == models.StatusPending || request.Status == models.StatusCarAccepted
	if request.DriverID == nil && open {
		assigned := driverID
		request.DriverID = &assigned
		switch {
		case request.Status == models.StatusCarAccepted:
			request.Status = models.StatusAccepted
		case request.CarCategoryID == nil:
			request.Status = models.StatusAccepted
		default:
			request.Status = models.StatusDriverAccepted
		}
		copied := *request
		return &copied, nil
	}

	if request.DriverID != nil {
		return nil, fmt.Errorf("driver_id on request %s: %w", id.Hex(), utils.ErrAlreadyAssigned)
	}
	return nil, utils.InvalidArgumentf("request %s is %s", id.Hex(), request.Status)
}

func (f *fakeRideRequestRepo) AssignCarDriver(ctx context.Context, id, driverID primitive.ObjectID) (*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return nil, utils.NotFoundf("ride request %s", id.Hex())
	}

	open := request.Status == models.StatusPending || request.Status == models.StatusDriverAccepted
	if request.CarDriverID == nil && open {
		assigned := driverID
		request.CarDriverID = &assigned
		if request.Status == models.StatusDriverAccepted {
			request.Status = models.StatusAccepted
		} else {
			request.Status = models.StatusCarAccepted
		}
		copied := *request
		return &copied, nil
	}

	if request.CarDriverID != nil {
		return nil, fmt.Errorf("car_driver_id on request %s: %w", id.Hex(), utils.ErrAlreadyAssigned)
	}
	return nil, utils.InvalidArgumentf("request %s is %s", id.Hex(), request.Status)
}

func (f *fakeRideRequestRepo) UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, allowed []models.RideRequestStatus, to models.RideRequestStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return false, nil
	}
	for _, status := range allowed {
		if request.Status == status {
			request.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRideRequestRepo) SetRolePayment(ctx context.Context, id primitive.ObjectID, role string, payment models.RolePayment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return utils.NotFoundf("ride request %s", id.Hex())
	}
	if role == "car" {
		request.CarPayment = payment
	} else {
		request.VehiclePayment = payment
	}
	return nil
}

type fakeZoneRepo struct {
	inZone bool
	err    error
}

func (f *fakeZoneRepo) Create(ctx context.Context, zone *models.CongestionZone) error { return nil }
func (f *fakeZoneRepo) GetAll(ctx context.Context) ([]*models.CongestionZone, error) {
	return nil, nil
}
func (f *fakeZoneRepo) ContainsPoint(ctx context.Context, lat, lng float64) (bool, error) {
	return f.inZone, f.err
}

type fakePolylineRepo struct {
	mu        sync.Mutex
	polylines map[primitive.ObjectID]*models.Polyline
}

func newFakePolylineRepo() *fakePolylineRepo {
	return &fakePolylineRepo{polylines: make(map[primitive.ObjectID]*models.Polyline)}
}

func (f *fakePolylineRepo) Create(ctx context.Context, polyline *models.Polyline) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	polyline.ID = primitive.NewObjectID()
	f.polylines[polyline.ID] = polyline
	return nil
}

func (f *fakePolylineRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Polyline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	polyline, ok := f.polylines[id]
	if !ok {
		return nil, utils.NotFoundf("polyline %s", id.Hex())
	}
	return polyline, nil
}

func (f *fakePolylineRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type fakeDeviceTokenRepo struct {
	mu     sync.Mutex
	tokens []*models.DeviceToken
}

func (f *fakeDeviceTokenRepo) Upsert(ctx context.Context, token *models.DeviceToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	return nil
}

func (f *fakeDeviceTokenRepo) GetByOwner(ctx context.Context, ownerID primitive.ObjectID, ownerType models.OwnerType) ([]*models.DeviceToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.DeviceToken
	for _, token := range f.tokens {
		if token.OwnerID == ownerID && token.OwnerType == ownerType {
			out = append(out, token)
		}
	}
	return out, nil
}

func (f *fakeDeviceTokenRepo) Delete(ctx context.Context, deviceID string, ownerID primitive.ObjectID, ownerType models.OwnerType) error {
	return nil
}

func (f *fakeDeviceTokenRepo) TouchByOwner(ctx context.Context, ownerID primitive.ObjectID, ownerType models.OwnerType) error {
	return nil
}

// fakeDistanceProvider returns canned values or a canned error.
type fakeDistanceProvider struct {
	distance string
	minutes  int
	err      error
}

func (f *fakeDistanceProvider) GetDistance(ctx context.Context, originLat, originLng, destLat, destLng float64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.distance, nil
}

func (f *fakeDistanceProvider) GetEstimatedTime(ctx context.Context, originLat, originLng, destLat, destLng float64) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.minutes, nil
}

// fakeHub records published topics for assertions.
type fakeHub struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	topic   string
	payload interface{}
}

func (f *fakeHub) Publish(topic string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, publishedEvent{topic: topic, payload: payload})
}

func (f *fakeHub) topics() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, event := range f.events {
		out[i] = event.topic
	}
	return out
}
