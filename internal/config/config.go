package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Analysis AnalysisConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	MaxFileSize int64
}

type AnalysisConfig struct {
	// TopKeywords is the number of ranked keywords extracted from the
	// job description.
	TopKeywords int
	// MinKeywords is the minimum number of distinct terms the job
	// description must contain to be analyzable.
	MinKeywords int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Analysis: AnalysisConfig{
			TopKeywords: getEnvAsInt("TOP_KEYWORDS", 25),
			MinKeywords: getEnvAsInt("MIN_KEYWORDS", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
