package maps

import "context"

// DistanceProvider answers route questions for a pickup/dropoff pair. Both
// calls are fallible remote calls; failures propagate to the caller and there
// is no local fallback computation.
type DistanceProvider interface {
	// GetDistance returns the human-readable driving distance, e.g. "5.2 km".
	GetDistance(ctx context.Context, originLat, originLng, destLat, destLng float64) (string, error)

	// GetEstimatedTime returns the estimated driving time in minutes.
	GetEstimatedTime(ctx context.Context, originLat, originLng, destLat, destLng float64) (int, error)
}
