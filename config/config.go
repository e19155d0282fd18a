package config

import (
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AWSConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

type AppConfig struct {
	Port          string
	Environment   string
	LogLevel      string
	JWTSecret     string
	GeminiAPIKey  string
	YouTubeAPIKey string
	Database      DatabaseConfig
	AWS           AWSConfig
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "skillhive"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:          getEnv("PORT", "8081"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),
		Database:      GetDatabaseConfig(),
		AWS: AWSConfig{
			AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Region:    getEnv("AWS_REGION", ""),
			Bucket:    getEnv("AWS_S3_BUCKET", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
