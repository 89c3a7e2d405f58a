package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Demo scenario, used when no scenario file is given
	Regime   string
	Width    float64
	Height   float64
	Balls    int
	Radius   float64
	MaxSpeed float64
	Seed     int64

	// Run settings
	Ticks           int
	StopWhenSettled bool
	Parallel        int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Environment: getEnv("BALLSIM_ENV", "development"),

		Regime:   getEnv("BALLSIM_REGIME", "VERTICAL"),
		Width:    getEnvFloat("BALLSIM_WIDTH", 800),
		Height:   getEnvFloat("BALLSIM_HEIGHT", 600),
		Balls:    getEnvInt("BALLSIM_BALLS", 12),
		Radius:   getEnvFloat("BALLSIM_RADIUS", 15),
		MaxSpeed: getEnvFloat("BALLSIM_MAX_SPEED", 60),
		Seed:     int64(getEnvInt("BALLSIM_SEED", 1)),

		Ticks:           getEnvInt("BALLSIM_TICKS", 5000),
		StopWhenSettled: getEnvBool("BALLSIM_STOP_WHEN_SETTLED", true),
		Parallel:        getEnvInt("BALLSIM_PARALLEL", 4),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
