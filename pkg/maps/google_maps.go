package maps

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"
)

type GoogleMapsProvider struct {
	client *maps.Client
}

func NewGoogleMapsProvider(apiKey string) (*GoogleMapsProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleMapsProvider{client: client}, nil
}

func (g *GoogleMapsProvider) GetDistance(ctx context.Context, originLat, originLng, destLat, destLng float64) (string, error) {
	element, err := g.matrixElement(ctx, originLat, originLng, destLat, destLng)
	if err != nil {
		return "", err
	}

	return element.Distance.HumanReadable, nil
}

func (g *GoogleMapsProvider) GetEstimatedTime(ctx context.Context, originLat, originLng, destLat, destLng float64) (int, error) {
	element, err := g.matrixElement(ctx, originLat, originLng, destLat, destLng)
	if err != nil {
		return 0, err
	}

	return int(math.Ceil(element.Duration.Minutes())), nil
}

func (g *GoogleMapsProvider) matrixElement(ctx context.Context, originLat, originLng, destLat, destLng float64) (*maps.DistanceMatrixElement, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%f,%f", originLat, originLng)},
		Destinations: []string{fmt.Sprintf("%f,%f", destLat, destLng)},
	}

	resp, err := g.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("distance matrix returned no elements")
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, fmt.Errorf("distance matrix element status %q", element.Status)
	}

	return element, nil
}
