package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8080"

type Config struct {
	BaseURL       string
	LogLevel      string
	LogFile       string
	Environment   string
	TracingConfig TracingConfig
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		BaseURL:     os.Getenv("PRODUCT_API_BASE_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFile:     os.Getenv("LOG_FILE"),
		Environment: os.Getenv("ENVIRONMENT"),
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	// The admin panel build injected VITE_BASE_URL; accept it so one .env serves both.
	if conf.BaseURL == "" {
		conf.BaseURL = os.Getenv("VITE_BASE_URL")
	}
	if conf.BaseURL == "" {
		conf.BaseURL = defaultBaseURL
	}
	conf.BaseURL = strings.TrimRight(conf.BaseURL, "/")

	if conf.LogLevel == "" {
		conf.LogLevel = "info"
	}
	if conf.Environment == "" {
		conf.Environment = "development"
	}

	return &conf
}
