package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	URI    string
	DBName string
}

type ElasticsearchConfig struct {
	DBHost string
}

type SearchConfig struct {
	FallbackToDB bool
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort         string
	MetricsPort         string
	MongoDBConfig       MongoDBConfig
	ElasticsearchConfig ElasticsearchConfig
	SearchConfig        SearchConfig
	TracingConfig       TracingConfig
	JWTSecret           string
	JWTExpiryHours      int
}

// CreateNewConfig reads the process environment. Missing required values are an
// error rather than a silent default.
func CreateNewConfig() (*Config, error) {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: os.Getenv("MONGODB_DB_NAME"),
		},
		ElasticsearchConfig: ElasticsearchConfig{
			DBHost: os.Getenv("ELASTIC_SEARCH_HOST"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	required := map[string]string{
		"SERVICE_PORT": conf.ServicePort,
		"MONGODB_URI":  conf.MongoDBConfig.URI,
		"JWT_SECRET":   conf.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "online_shop"
	}

	conf.JWTExpiryHours = 24
	if raw := os.Getenv("JWT_EXPIRY_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %w", err)
		}
		conf.JWTExpiryHours = hours
	}

	conf.SearchConfig.FallbackToDB = os.Getenv("SEARCH_FALLBACK_TO_DB") == "true"

	return &conf, nil
}
