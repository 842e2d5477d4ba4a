package config

type StorageConfig struct {
	Provider        string `yaml:"provider"` // gcs, s3, local
	GCSBucket       string `yaml:"gcs_bucket"`
	GCSCredentials  string `yaml:"gcs_credentials"`
	S3Region        string `yaml:"s3_region"`
	S3Bucket        string `yaml:"s3_bucket"`
	LocalBasePath   string `yaml:"local_base_path"`
	LocalBaseURL    string `yaml:"local_base_url"`
	MaxUploadSizeMB int    `yaml:"max_upload_size_mb"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider:        getEnv("STORAGE_PROVIDER", "local"),
		GCSBucket:       getEnv("GCS_BUCKET", ""),
		GCSCredentials:  getEnv("GCS_CREDENTIALS_FILE", ""),
		S3Region:        getEnv("S3_REGION", "eu-west-2"),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		LocalBasePath:   getEnv("STORAGE_LOCAL_PATH", "./uploads"),
		LocalBaseURL:    getEnv("STORAGE_LOCAL_URL", "http://localhost:8080/uploads"),
		MaxUploadSizeMB: getEnvAsInt("MAX_UPLOAD_SIZE_MB", 10),
	}
}
