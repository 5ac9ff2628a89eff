package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"student-manager/internal/logger"
)

const (
	DefaultWindowWidth  = 700
	DefaultWindowHeight = 500
)

type Config struct {
	LogLevel     zerolog.Level
	LogFormat    string
	WindowWidth  float32
	WindowHeight float32
}

// Load reads an optional .env file and then the process environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only
func FromEnv() Config {
	level := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if os.Getenv("DEBUG") == "1" {
		level = zerolog.DebugLevel
	}

	format := getEnv("LOG_FORMAT", "console")
	if format != "json" {
		format = "console"
	}

	return Config{
		LogLevel:     level,
		LogFormat:    format,
		WindowWidth:  getEnvSize("WINDOW_WIDTH", DefaultWindowWidth),
		WindowHeight: getEnvSize("WINDOW_HEIGHT", DefaultWindowHeight),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvSize(key string, defaultValue float32) float32 {
	value, err := strconv.ParseFloat(os.Getenv(key), 32)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return float32(value)
}
