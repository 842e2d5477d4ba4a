package services

import (
	"context"
	"fmt"

	"ambition/internal/models"
	"ambition/internal/utils"
	"ambition/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceInput carries everything the fare calculator needs. IsNight and
// InCongestionZone are resolved by the caller so pricing itself stays pure
// and testable.
type PriceInput struct {
	Category         *models.VehicleCategory
	CarCategory      *models.CarCategory
	Summary          *models.CargoSummary
	EstimatedTime    int // minutes
	Requirements     models.Requirements
	IsEventJob       bool
	IsNight          bool
	InCongestionZone bool
}

// FareService computes the itemized fare embedded on a ride request. Amounts
// inside a band are drawn from the injected randomizer; band randomization is
// pricing policy, so tests pin the draw rather than strip it.
type FareService struct {
	rand   utils.BandedRand
	logger *logger.Logger
}

func NewFareService(rand utils.BandedRand, log *logger.Logger) *FareService {
	return &FareService{
		rand:   rand,
		logger: log,
	}
}

// Price builds the full fare breakdown. Every component is non-negative and
// rounded to 2 decimals; the time fare errors out when the estimate falls
// outside all brackets instead of defaulting to zero.
func (s *FareService) Price(ctx context.Context, input PriceInput) (*models.Fare, error) {
	if input.Category == nil {
		return nil, utils.InvalidArgumentf("vehicle category is required")
	}
	if input.Summary == nil {
		return nil, utils.InvalidArgumentf("cargo summary is required")
	}

	timeFare, err := s.timeFare(input.Category.TimeFare, input.EstimatedTime)
	if err != nil {
		return nil, err
	}

	fare := &models.Fare{
		InitialServiceFee: utils.Round2(input.Category.InitialServiceFee),
		ServiceFee:        utils.Round2(input.Category.ServiceFee),
		TimeFare:          timeFare,
		ItemBasedPricing:  s.itemBasedPricing(input.Category, input.Summary.BucketCounts),
		HelpersCharge:     s.helpersCharge(input.Requirements),
	}

	if input.InCongestionZone {
		fare.CongestionCharge = utils.CongestionCharge
	}
	if input.IsNight {
		fare.Surcharge = s.rand.Between(utils.NightSurchargeMin, utils.NightSurchargeMax)
	}
	if input.CarCategory != nil {
		fare.CarBaseFare = s.rand.Between(input.CarCategory.BaseFare.Min, input.CarCategory.BaseFare.Max)
	}

	fare.VehicleDriverTotal = utils.Round2(fare.VehicleSideSum() * utils.DriverShare)
	fare.CarDriverTotal = utils.Round2(fare.CarSideSum() * utils.DriverShare)
	fare.Total = utils.Round2(fare.VehicleSideSum() + fare.CarSideSum())

	return fare, nil
}

// DriverTotal re-derives the querying driver's payout from the stored fare by
// matching their category against the request's roles. It is computed on
// demand, never stored per driver.
func (s *FareService) DriverTotal(request *models.RideRequest, driverCategoryID primitive.ObjectID) (float64, error) {
	if driverCategoryID == request.VehicleCategoryID {
		return utils.Round2(request.Fare.VehicleSideSum() * utils.DriverShare), nil
	}
	if request.CarCategoryID != nil && driverCategoryID == *request.CarCategoryID {
		return utils.Round2(request.Fare.CarSideSum() * utils.DriverShare), nil
	}
	return 0, fmt.Errorf("category %s on request %s: %w", driverCategoryID.Hex(), request.ID.Hex(), utils.ErrCategoryMismatch)
}

// itemBasedPricing draws one per-unit price per bucket and multiplies by the
// bucket count. Buckets the category does not price contribute nothing.
func (s *FareService) itemBasedPricing(category *models.VehicleCategory, counts map[models.SizeBucket]int) float64 {
	var total float64
	for bucket, count := range counts {
		if count <= 0 {
			continue
		}
		band, ok := category.Pricing[bucket]
		if !ok {
			continue
		}
		total += float64(count) * s.rand.Between(band.Min, band.Max)
	}
	return utils.Round2(total)
}

func (s *FareService) timeFare(timeFare models.TimeFare, minutes int) (float64, error) {
	if len(timeFare.Brackets) > 0 {
		for _, bracket := range timeFare.Brackets {
			if minutes >= bracket.StartMinutes && minutes < bracket.EndMinutes {
				return s.rand.Between(bracket.MinPrice, bracket.MaxPrice), nil
			}
		}
		return 0, fmt.Errorf("estimated time %d minutes: %w", minutes, utils.ErrInvalidTimeRange)
	}

	if timeFare.Flat != nil {
		return s.rand.Between(timeFare.Flat.Min, timeFare.Flat.Max), nil
	}

	return 0, nil
}

// helpersCharge accumulates a per-floor draw for every floor traversed on both
// ends, scales by helper count, and adds the flat per-helper amount. No
// helpers means no charge no matter the floors.
func (s *FareService) helpersCharge(req models.Requirements) float64 {
	helpers := req.RequiredHelpers
	if helpers <= 0 {
		return 0
	}

	var perFloor float64
	for _, floor := range []int{req.PickupFloor, req.DropoffFloor} {
		if floor < 0 {
			floor = -floor
		}
		for i := 0; i < floor; i++ {
			perFloor += s.rand.Between(utils.HelperFloorChargeMin, utils.HelperFloorChargeMax)
		}
	}

	return utils.Round2(perFloor*float64(helpers) + float64(helpers)*utils.HelperFlatCharge)
}
