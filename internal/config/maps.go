package config

import "time"

type MapsConfig struct {
	GoogleMapsAPIKey string        `yaml:"google_maps_api_key"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		GoogleMapsAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		RequestTimeout:   getEnvAsDuration("MAPS_REQUEST_TIMEOUT", 5*time.Second),
	}
}
