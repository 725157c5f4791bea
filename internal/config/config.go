package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DatabaseURL string // CLUSTERCONFIG_DATABASE_URL (required)
	HTTPAddr    string // CLUSTERCONFIG_HTTP_ADDR (default ":8080")
	NATSURL     string // CLUSTERCONFIG_NATS_URL (optional, empty = no events)
	AuthToken   string // CLUSTERCONFIG_AUTH_TOKEN (optional, empty = auth disabled)

	// Backup settings
	BackupInterval   time.Duration // CLUSTERCONFIG_BACKUP_INTERVAL (default 15m; 0 = disabled)
	BackupS3Bucket   string        // CLUSTERCONFIG_BACKUP_S3_BUCKET (enables S3 backups when set)
	BackupS3Endpoint string        // CLUSTERCONFIG_BACKUP_S3_ENDPOINT (custom endpoint for MinIO)
	BackupS3Region   string        // CLUSTERCONFIG_BACKUP_S3_REGION (default "us-east-1")
	BackupS3Key      string        // CLUSTERCONFIG_BACKUP_S3_KEY (default "clusterconfig/backup.jsonl")
}

func Load() (*Config, error) {
	c := &Config{
		DatabaseURL:      os.Getenv("CLUSTERCONFIG_DATABASE_URL"),
		HTTPAddr:         envOrDefault("CLUSTERCONFIG_HTTP_ADDR", ":8080"),
		NATSURL:          os.Getenv("CLUSTERCONFIG_NATS_URL"),
		AuthToken:        os.Getenv("CLUSTERCONFIG_AUTH_TOKEN"),
		BackupS3Bucket:   os.Getenv("CLUSTERCONFIG_BACKUP_S3_BUCKET"),
		BackupS3Endpoint: os.Getenv("CLUSTERCONFIG_BACKUP_S3_ENDPOINT"),
		BackupS3Region:   envOrDefault("CLUSTERCONFIG_BACKUP_S3_REGION", "us-east-1"),
		BackupS3Key:      envOrDefault("CLUSTERCONFIG_BACKUP_S3_KEY", "clusterconfig/backup.jsonl"),
	}
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("CLUSTERCONFIG_DATABASE_URL is required")
	}

	intervalStr := envOrDefault("CLUSTERCONFIG_BACKUP_INTERVAL", "15m")
	if intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("CLUSTERCONFIG_BACKUP_INTERVAL: %w", err)
		}
		c.BackupInterval = d
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
