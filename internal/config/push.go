package config

type PushConfig struct {
	FCMCredentialsFile string `yaml:"fcm_credentials_file"`
	APNSKeyFile        string `yaml:"apns_key_file"`
	APNSKeyID          string `yaml:"apns_key_id"`
	APNSTeamID         string `yaml:"apns_team_id"`
	APNSTopic          string `yaml:"apns_topic"`
	APNSProduction     bool   `yaml:"apns_production"`
}

func loadPushConfig() *PushConfig {
	return &PushConfig{
		FCMCredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),
		APNSKeyFile:        getEnv("APNS_KEY_FILE", ""),
		APNSKeyID:          getEnv("APNS_KEY_ID", ""),
		APNSTeamID:         getEnv("APNS_TEAM_ID", ""),
		APNSTopic:          getEnv("APNS_TOPIC", ""),
		APNSProduction:     getEnvAsBool("APNS_PRODUCTION", false),
	}
}
