package services

import (
	"context"
	"testing"

	"ambition/internal/models"
	"ambition/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClassifyCatalogItems(t *testing.T) {
	box := &models.Item{
		Name:     "Moving Box",
		ItemType: models.BucketSmall,
		Length:   0.5, Width: 0.4, Height: 0.4,
		Weight: 10,
	}
	sofa := &models.Item{
		Name:     "Two Seater Sofa",
		ItemType: models.BucketLarge,
		Length:   1.6, Width: 0.9, Height: 0.8,
		Weight: 45,
	}
	repo := newFakeItemRepo(box, sofa)
	svc := NewCargoService(repo, testLogger(t))

	summary, err := svc.Classify(context.Background(), []models.ItemRef{
		{ItemID: box.ID, Quantity: 3},
		{ItemID: sofa.ID, Quantity: 1},
	}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 3*0.5*0.4*0.4+1.6*0.9*0.8, summary.TotalVolume, 1e-9)
	assert.InDelta(t, 3*10+45, summary.TotalWeight, 1e-9)
	assert.Equal(t, 3, summary.BucketCounts[models.BucketSmall])
	assert.Equal(t, 1, summary.BucketCounts[models.BucketLarge])
}

func TestClassifyIsDeterministic(t *testing.T) {
	box := &models.Item{
		Name:     "Moving Box",
		ItemType: models.BucketSmall,
		Length:   0.5, Width: 0.4, Height: 0.4,
		Weight: 10,
	}
	repo := newFakeItemRepo(box)
	svc := NewCargoService(repo, testLogger(t))

	refs := []models.ItemRef{{ItemID: box.ID, Quantity: 2}}
	custom := []models.CustomItem{{Name: "Lamp", Length: 0.3, Width: 0.2, Height: 1.1, Weight: 4, Quantity: 2}}

	first, err := svc.Classify(context.Background(), refs, custom)
	require.NoError(t, err)
	second, err := svc.Classify(context.Background(), refs, custom)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassifyMissingItemFailsWhole(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewCargoService(repo, testLogger(t))

	_, err := svc.Classify(context.Background(), []models.ItemRef{
		{ItemID: primitive.NewObjectID(), Quantity: 1},
	}, nil)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

// Custom items add their own dimensions once regardless of quantity; only the
// bucket count scales.
func TestClassifyCustomItemQuantityAsymmetry(t *testing.T) {
	svc := NewCargoService(newFakeItemRepo(), testLogger(t))

	custom := []models.CustomItem{{
		Name:   "Crate",
		Length: 0.4, Width: 0.4, Height: 0.4,
		Weight:   22,
		Quantity: 3,
	}}

	summary, err := svc.Classify(context.Background(), nil, custom)
	require.NoError(t, err)

	assert.InDelta(t, 0.4*0.4*0.4, summary.TotalVolume, 1e-9)
	assert.InDelta(t, 22, summary.TotalWeight, 1e-9)
	assert.Equal(t, 3, summary.BucketCounts[models.BucketSmall])
}

func TestClassifyOversizedCustomItemCountsNothing(t *testing.T) {
	svc := NewCargoService(newFakeItemRepo(), testLogger(t))

	custom := []models.CustomItem{{
		Name:   "Shipping Container",
		Length: 6, Width: 2.4, Height: 2.6,
		Weight:   2000,
		Quantity: 1,
	}}

	summary, err := svc.Classify(context.Background(), nil, custom)
	require.NoError(t, err)

	assert.InDelta(t, 6*2.4*2.6, summary.TotalVolume, 1e-9)
	assert.InDelta(t, 2000, summary.TotalWeight, 1e-9)
	assert.Empty(t, summary.BucketCounts)
}

func TestCategorizeCustomItem(t *testing.T) {
	tests := []struct {
		name   string
		item   models.CustomItem
		want   models.SizeBucket
		wantOK bool
	}{
		{
			name:   "exactly at extra small bounds",
			item:   models.CustomItem{Length: 0.3, Width: 0.3, Height: 0.3, Weight: 20},
			want:   models.BucketExtraSmall,
			wantOK: true,
		},
		{
			name:   "one dimension over extra small",
			item:   models.CustomItem{Length: 0.31, Width: 0.1, Height: 0.1, Weight: 1},
			want:   models.BucketSmall,
			wantOK: true,
		},
		{
			name:   "weight alone pushes the bucket up",
			item:   models.CustomItem{Length: 0.1, Width: 0.1, Height: 0.1, Weight: 30},
			want:   models.BucketMedium,
			wantOK: true,
		},
		{
			name:   "at the extra large ceiling",
			item:   models.CustomItem{Length: 2.6, Width: 2.6, Height: 2.6, Weight: 151},
			want:   models.BucketExtraLarge,
			wantOK: true,
		},
		{
			name:   "too large for every bucket",
			item:   models.CustomItem{Length: 2.7, Width: 1, Height: 1, Weight: 50},
			wantOK: false,
		},
		{
			name:   "too heavy for every bucket",
			item:   models.CustomItem{Length: 1, Width: 1, Height: 1, Weight: 152},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, ok := CategorizeCustomItem(tt.item)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, bucket)
			}
		})
	}
}
