package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"
	"ambition/pkg/logger"
	"ambition/pkg/maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// CreateRideRequestInput is the validated request-creation command.
type CreateRideRequestInput struct {
	UserID            primitive.ObjectID
	VehicleCategoryID primitive.ObjectID
	CarCategoryID     *primitive.ObjectID
	MoveType          string
	Pickup            models.Location
	Dropoff           models.Location
	Items             []models.ItemRef
	CustomItems       []models.CustomItem
	Requirements      models.Requirements
	PassengersCount   int
	IsRideAndMove     bool
	IsEventJob        bool
	PolylinePoints    []models.PolylinePoint
}

// RideRequestService owns the request lifecycle: creation with a committed
// fare, per-role driver assignment, and the terminal transitions. Assignment
// relies on the repository's conditional writes; this service never does a
// read-check-then-update on the role fields.
type RideRequestService struct {
	requestRepo     interfaces.RideRequestRepository
	itemRepo        interfaces.ItemRepository
	categoryRepo    interfaces.VehicleCategoryRepository
	carCategoryRepo interfaces.CarCategoryRepository
	driverRepo      interfaces.DriverRepository
	zoneRepo        interfaces.CongestionZoneRepository
	polylineRepo    interfaces.PolylineRepository
	cargo           *CargoService
	fares           *FareService
	distance        maps.DistanceProvider
	notifier        *NotificationService
	upstreamTimeout time.Duration
	now             func() time.Time
	logger          *logger.Logger
}

func NewRideRequestService(
	requestRepo interfaces.RideRequestRepository,
	itemRepo interfaces.ItemRepository,
	categoryRepo interfaces.VehicleCategoryRepository,
	carCategoryRepo interfaces.CarCategoryRepository,
	driverRepo interfaces.DriverRepository,
	zoneRepo interfaces.CongestionZoneRepository,
	polylineRepo interfaces.PolylineRepository,
	cargo *CargoService,
	fares *FareService,
	distance maps.DistanceProvider,
	notifier *NotificationService,
	upstreamTimeout time.Duration,
	log *logger.Logger,
) *RideRequestService {
	return &RideRequestService{
		requestRepo:     requestRepo,
		itemRepo:        itemRepo,
		categoryRepo:    categoryRepo,
		carCategoryRepo: carCategoryRepo,
		driverRepo:      driverRepo,
		zoneRepo:        zoneRepo,
		polylineRepo:    polylineRepo,
		cargo:           cargo,
		fares:           fares,
		distance:        distance,
		notifier:        notifier,
		upstreamTimeout: upstreamTimeout,
		now:             time.Now,
		logger:          log,
	}
}

// Create builds and persists a pending request with its fare committed. The
// polyline is written before the request; a failure in between leaves an
// orphaned polyline, which is logged and tolerated.
func (s *RideRequestService) Create(ctx context.Context, input CreateRideRequestInput) (*models.RideRequest, error) {
	if !input.Pickup.HasCoordinates() || !input.Dropoff.HasCoordinates() {
		return nil, utils.InvalidArgumentf("pickup and dropoff coordinates are required")
	}
	if input.PassengersCount < 0 {
		return nil, utils.InvalidArgumentf("passengers count must not be negative")
	}

	summary, err := s.cargo.Classify(ctx, input.Items, input.CustomItems)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, input.VehicleCategoryID)
	if err != nil {
		return nil, err
	}

	var carCategory *models.CarCategory
	if input.CarCategoryID != nil && !input.CarCategoryID.IsZero() {
		carCategory, err = s.carCategoryRepo.GetByID(ctx, *input.CarCategoryID)
		if err != nil {
			return nil, err
		}
	}

	distanceText, estimatedTime, err := s.routeInfo(ctx, input.Pickup, input.Dropoff)
	if err != nil {
		return nil, err
	}

	inZone, err := s.routeInCongestionZone(ctx, input.Pickup, input.Dropoff)
	if err != nil {
		return nil, err
	}

	fare, err := s.fares.Price(ctx, PriceInput{
		Category:         category,
		CarCategory:      carCategory,
		Summary:          summary,
		EstimatedTime:    estimatedTime,
		Requirements:     input.Requirements,
		IsEventJob:       input.IsEventJob,
		IsNight:          utils.IsNightTime(s.now()),
		InCongestionZone: inZone,
	})
	if err != nil {
		return nil, err
	}

	request := &models.RideRequest{
		UserID:            input.UserID,
		VehicleCategoryID: input.VehicleCategoryID,
		CarCategoryID:     input.CarCategoryID,
		MoveType:          input.MoveType,
		PickupLocation:    input.Pickup,
		DropoffLocation:   input.Dropoff,
		Distance:          distanceText,
		EstimatedTime:     estimatedTime,
		Items:             input.Items,
		CustomItems:       input.CustomItems,
		Requirements:      input.Requirements,
		PassengersCount:   input.PassengersCount,
		IsRideAndMove:     input.IsRideAndMove,
		IsEventJob:        input.IsEventJob,
		Fare:              *fare,
		Status:            models.StatusPending,
		VehiclePayment: models.RolePayment{
			State:  models.PaymentStateUnpaid,
			Amount: utils.Round2(fare.VehicleSideSum()),
		},
	}
	if carCategory != nil {
		request.CarPayment = models.RolePayment{
			State:  models.PaymentStateUnpaid,
			Amount: utils.Round2(fare.CarSideSum()),
		}
	}

	if len(input.PolylinePoints) > 0 {
		polyline := &models.Polyline{Points: input.PolylinePoints}
		if err := s.polylineRepo.Create(ctx, polyline); err != nil {
			return nil, err
		}
		request.PolylineID = &polyline.ID
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		if request.PolylineID != nil {
			s.logger.WithField("polyline_id", request.PolylineID.Hex()).Warn("request creation failed, polyline left orphaned")
		}
		return nil, err
	}

	s.notifier.NotifyCreated(ctx, request)

	return request, nil
}

// AssignDriver matches the driver's category against the request's roles and
// fills the matching one with the repository's atomic conditional write.
// Concurrent accepts for the same role produce exactly one winner; losers get
// ErrAlreadyAssigned.
func (s *RideRequestService) AssignDriver(ctx context.Context, requestID, driverID primitive.ObjectID) (*models.RideRequest, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.Disabled {
		return nil, utils.InvalidArgumentf("driver %s is disabled", driverID.Hex())
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	categoryID := driver.Car.CategoryID

	var updated *models.RideRequest
	switch {
	case categoryID == request.VehicleCategoryID:
		updated, err = s.requestRepo.AssignDriver(ctx, requestID, driverID)
	case request.CarCategoryID != nil && categoryID == *request.CarCategoryID:
		updated, err = s.requestRepo.AssignCarDriver(ctx, requestID, driverID)
	default:
		return nil, fmt.Errorf("driver %s with category %s on request %s: %w",
			driverID.Hex(), categoryID.Hex(), requestID.Hex(), utils.ErrCategoryMismatch)
	}
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyAccepted(ctx, updated, driverID)

	return updated, nil
}

// Cancel moves the request to canceled from any non-terminal state. Canceling
// a completed or already-canceled request is rejected rather than silently
// overwritten.
func (s *RideRequestService) Cancel(ctx context.Context, requestID primitive.ObjectID) error {
	allowed := []models.RideRequestStatus{
		models.StatusPending,
		models.StatusDriverAccepted,
		models.StatusCarAccepted,
		models.StatusAccepted,
	}
	return s.transition(ctx, requestID, allowed, models.StatusCanceled)
}

// Complete closes out a fully assigned job. Only accepted requests qualify.
func (s *RideRequestService) Complete(ctx context.Context, requestID primitive.ObjectID) error {
	allowed := []models.RideRequestStatus{models.StatusAccepted}
	return s.transition(ctx, requestID, allowed, models.StatusCompleted)
}

func (s *RideRequestService) transition(ctx context.Context, requestID primitive.ObjectID, allowed []models.RideRequestStatus, to models.RideRequestStatus) error {
	ok, err := s.requestRepo.UpdateStatusFrom(ctx, requestID, allowed, to)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	existing, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	return utils.InvalidArgumentf("cannot move request %s from %s to %s", requestID.Hex(), existing.Status, to)
}

// GetByID loads a request with its catalog items resolved.
func (s *RideRequestService) GetByID(ctx context.Context, requestID primitive.ObjectID) (*models.RideRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := s.populateItems(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RideRequestService) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.RideRequest, error) {
	return s.requestRepo.GetByUser(ctx, userID)
}

// GetByDriver returns the driver's jobs plus their recomputed earnings: the
// role share is re-derived from each completed request's stored fare, never
// persisted per driver.
func (s *RideRequestService) GetByDriver(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideRequest, float64, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, 0, err
	}

	requests, err := s.requestRepo.GetByDriver(ctx, driverID)
	if err != nil {
		return nil, 0, err
	}

	var earnings float64
	for _, request := range requests {
		if request.Status != models.StatusCompleted {
			continue
		}
		total, err := s.fares.DriverTotal(request, driver.Car.CategoryID)
		if err != nil {
			if errors.Is(err, utils.ErrCategoryMismatch) {
				continue
			}
			return nil, 0, err
		}
		earnings += total
	}

	return requests, utils.Round2(earnings), nil
}

func (s *RideRequestService) populateItems(ctx context.Context, request *models.RideRequest) error {
	if len(request.Items) == 0 {
		return nil
	}

	resolved := make([]*models.Item, len(request.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range request.Items {
		i, ref := i, ref
		g.Go(func() error {
			item, err := s.itemRepo.GetByID(gctx, ref.ItemID)
			if err != nil {
				return err
			}
			resolved[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	request.PopulatedItems = resolved
	return nil
}

// routeInfo fetches the distance text and the ETA in minutes with a bounded
// per-call timeout; upstream failures surface as typed errors.
func (s *RideRequestService) routeInfo(ctx context.Context, pickup, dropoff models.Location) (string, int, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancel()

	distanceText, err := s.distance.GetDistance(callCtx,
		pickup.Latitude(), pickup.Longitude(), dropoff.Latitude(), dropoff.Longitude())
	if err != nil {
		return "", 0, upstreamError("distance lookup", err)
	}

	etaCtx, cancelETA := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancelETA()

	estimatedTime, err := s.distance.GetEstimatedTime(etaCtx,
		pickup.Latitude(), pickup.Longitude(), dropoff.Latitude(), dropoff.Longitude())
	if err != nil {
		return "", 0, upstreamError("eta lookup", err)
	}

	return distanceText, estimatedTime, nil
}

func (s *RideRequestService) routeInCongestionZone(ctx context.Context, pickup, dropoff models.Location) (bool, error) {
	inZone, err := s.zoneRepo.ContainsPoint(ctx, pickup.Latitude(), pickup.Longitude())
	if err != nil {
		return false, upstreamError("congestion check", err)
	}
	if inZone {
		return true, nil
	}

	inZone, err = s.zoneRepo.ContainsPoint(ctx, dropoff.Latitude(), dropoff.Longitude())
	if err != nil {
		return false, upstreamError("congestion check", err)
	}
	return inZone, nil
}

func upstreamError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, utils.ErrTimedOut)
	}
	return fmt.Errorf("%s: %s: %w", op, err, utils.ErrUpstreamUnavailable)
}
