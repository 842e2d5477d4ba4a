package config

import "time"

// PricingConfig holds the policy knobs of the fare and matching pipeline.
// Per-category rates live in the database; these are the deployment-wide
// switches.
type PricingConfig struct {
	// MoveHelpersOccupySeats counts requested helpers against the vehicle's
	// passenger capacity when selecting categories for a move.
	MoveHelpersOccupySeats bool `yaml:"move_helpers_occupy_seats"`

	// UpstreamTimeout bounds each distance/ETA lookup during quoting.
	UpstreamTimeout time.Duration `yaml:"upstream_timeout"`
}

func loadPricingConfig() *PricingConfig {
	return &PricingConfig{
		MoveHelpersOccupySeats: getEnvAsBool("MOVE_HELPERS_OCCUPY_SEATS", true),
		UpstreamTimeout:        getEnvAsDuration("UPSTREAM_TIMEOUT", 5*time.Second),
	}
}
