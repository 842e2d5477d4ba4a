package services

import (
	"context"
	"fmt"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// CargoService turns a request's item lists into the aggregate cargo summary
// the selector and fare calculator work from.
type CargoService struct {
	itemRepo interfaces.ItemRepository
	logger   *logger.Logger
}

func NewCargoService(itemRepo interfaces.ItemRepository, log *logger.Logger) *CargoService {
	return &CargoService{
		itemRepo: itemRepo,
		logger:   log,
	}
}

// Classify resolves catalog references and folds custom items into total
// volume, total weight and per-bucket counts. A missing catalog id fails the
// whole classification; it is never silently skipped.
//
// Custom items contribute their own dimensions to volume and weight without
// the quantity multiplier; only their bucket counts scale with quantity.
func (s *CargoService) Classify(ctx context.Context, items []models.ItemRef, custom []models.CustomItem) (*models.CargoSummary, error) {
	summary := &models.CargoSummary{
		BucketCounts: make(map[models.SizeBucket]int),
	}

	// Catalog lookups are independent; fan them out.
	resolved := make([]*models.Item, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range items {
		i, ref := i, ref
		g.Go(func() error {
			item, err := s.itemRepo.GetByID(gctx, ref.ItemID)
			if err != nil {
				return fmt.Errorf("failed to resolve item %s: %w", ref.ItemID.Hex(), err)
			}
			resolved[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, ref := range items {
		item := resolved[i]
		qty := float64(ref.Quantity)

		summary.TotalVolume += item.Length * item.Width * item.Height * qty
		summary.TotalWeight += item.Weight * qty
		summary.BucketCounts[item.ItemType] += ref.Quantity
	}

	for _, ci := range custom {
		summary.TotalVolume += ci.Length * ci.Width * ci.Height
		summary.TotalWeight += ci.Weight

		if bucket, ok := CategorizeCustomItem(ci); ok {
			summary.BucketCounts[bucket] += ci.Quantity
		} else {
			s.logger.WithField("item", ci.Name).Debug("custom item fits no size bucket, counting volume and weight only")
		}
	}

	return summary, nil
}

// CategorizeCustomItem finds the smallest bucket whose dimension and weight
// bounds all cover the item. Buckets are tried in ascending size order; an
// item too large for every bucket is uncategorized.
func CategorizeCustomItem(item models.CustomItem) (models.SizeBucket, bool) {
	for _, bucket := range models.SizeBuckets {
		bound := models.BucketBounds[bucket]
		if item.Length <= bound.Dimension &&
			item.Width <= bound.Dimension &&
			item.Height <= bound.Dimension &&
			item.Weight <= bound.Weight {
			return bucket, true
		}
	}
	return "", false
}
