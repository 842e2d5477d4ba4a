package services

import (
	"context"
	"sort"
	"strings"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"
	"ambition/pkg/logger"
)

// SelectionInput is everything the selector needs to rank categories for a
// prospective request.
type SelectionInput struct {
	Summary            *models.CargoSummary
	Pickup             models.Location
	Dropoff            models.Location
	PeopleTaggingAlong int
	RequiredHelpers    int
	MoveType           string
}

// CategoryService ranks vehicle categories against a cargo summary. Capacity
// comes from the category documents themselves; there is no parallel
// hardcoded limit table.
type CategoryService struct {
	categoryRepo       interfaces.VehicleCategoryRepository
	helpersOccupySeats bool
	logger             *logger.Logger
}

func NewCategoryService(categoryRepo interfaces.VehicleCategoryRepository, helpersOccupySeats bool, log *logger.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo:       categoryRepo,
		helpersOccupySeats: helpersOccupySeats,
		logger:             log,
	}
}

// Select returns the cheapest-and-smallest qualifying category plus the
// remaining candidates in rank order.
func (s *CategoryService) Select(ctx context.Context, input SelectionInput) (*models.CategorySuggestion, error) {
	if !input.Pickup.HasCoordinates() || !input.Dropoff.HasCoordinates() {
		return nil, utils.InvalidArgumentf("pickup and dropoff coordinates are required")
	}
	if input.Summary == nil {
		return nil, utils.InvalidArgumentf("cargo summary is required")
	}

	passengers := input.PeopleTaggingAlong
	if s.helpersOccupySeats {
		passengers += input.RequiredHelpers
	}

	candidates, err := s.categoryRepo.FindEligible(ctx, input.Summary.TotalVolume, input.Summary.TotalWeight, passengers)
	if err != nil {
		return nil, err
	}

	filtered := make([]*models.VehicleCategory, 0, len(candidates))
	for _, category := range candidates {
		if !fitsBucketCapacity(category, input.Summary.BucketCounts) {
			continue
		}
		if !matchesMoveType(category, input.MoveType) {
			continue
		}
		filtered = append(filtered, category)
	}

	if len(filtered) == 0 {
		return nil, utils.NotFoundf("no vehicle category can carry this cargo")
	}

	sort.Slice(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.ServiceFee != b.ServiceFee {
			return a.ServiceFee < b.ServiceFee
		}
		if a.PayloadCapacity != b.PayloadCapacity {
			return a.PayloadCapacity < b.PayloadCapacity
		}
		if a.LoadVolume != b.LoadVolume {
			return a.LoadVolume < b.LoadVolume
		}
		return a.PassengerCapacity < b.PassengerCapacity
	})

	return &models.CategorySuggestion{
		Summary:      input.Summary,
		Suggested:    filtered[0],
		Alternatives: filtered[1:],
	}, nil
}

// fitsBucketCapacity checks every demanded bucket against the category's
// capacity table; buckets the category does not list admit zero.
func fitsBucketCapacity(category *models.VehicleCategory, counts map[models.SizeBucket]int) bool {
	for bucket, count := range counts {
		if count > category.BucketLimit(bucket) {
			return false
		}
	}
	return true
}

// matchesMoveType pins specialized move types to their vehicle type. The
// default pool excludes refrigeration vans so generic requests never get a
// cold-chain vehicle.
func matchesMoveType(category *models.VehicleCategory, moveType string) bool {
	normalized := strings.ToLower(moveType)

	switch {
	case strings.Contains(normalized, "refrigeration"):
		return category.VehicleType == models.VehicleTypeRefrigerationVan
	case strings.Contains(normalized, "luton"):
		return category.VehicleType == models.VehicleTypeLutonVan
	case strings.Contains(normalized, "environment"):
		return category.VehicleType == models.VehicleTypeEnvironmentVan
	default:
		return category.VehicleType != models.VehicleTypeRefrigerationVan
	}
}
