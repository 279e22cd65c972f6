package config

import (
	"os"
	"strings"
)

type Config struct {
	Env      string
	HttpPort string
	DBDsn    string // postgres DSN (DATABASE_URL / DB_DSN)

	// Object storage provider (S3-compatible control plane)
	S3Endpoint     string // empty means provider default (AWS)
	S3Region       string
	S3AccessKey    string // empty means SDK default credential chain
	S3SecretKey    string
	S3UsePathStyle bool   // true for MinIO/MCG and most self-hosted providers
	BucketPrefix   string // tenant bucket = prefix + tenant key

	// Lifecycle event mirroring (optional)
	RedisAddr     string
	RedisPassword string
	RedisChannel  string

	// Admin API token; empty disables auth (dev only)
	AdminToken string
}

func Load() *Config {
	cfg := &Config{
		Env:            getEnv("APP_ENV", "dev"),
		HttpPort:       getEnv("HTTP_PORT", "8080"),
		DBDsn:          getEnv("DATABASE_URL", getEnv("DB_DSN", "")),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3UsePathStyle: getBool("S3_USE_PATH_STYLE", true),
		BucketPrefix:   getEnv("BUCKET_PREFIX", "tenant-"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisChannel:   getEnv("REDIS_CHANNEL", "hestia:events"),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}
