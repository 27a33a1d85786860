package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultGRPCAddr = ":8080"
	defaultHTTPAddr = ":8081"
	defaultAPIToken = "dev-token"
	defaultLogLevel = "info"

	// LogFormatConsole and LogFormatJSON are the accepted LOG_FORMAT values
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds the process configuration
type Config struct {
	GRPCAddr string
	HTTPAddr string
	// APIToken is the operator token required by mutating calls
	APIToken string
	LogLevel string
	// LogFormat selects human-readable console output or JSON lines
	LogFormat string
	// GeneratorSeed seeds synthetic transactions; 0 picks a random seed
	GeneratorSeed uint64
}

// Load reads an optional .env file and then the environment
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	seed, err := getUintEnv("GENERATOR_SEED", 0)
	if err != nil {
		return nil, err
	}

	format := getEnv("LOG_FORMAT", LogFormatConsole)
	if format != LogFormatConsole && format != LogFormatJSON {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want %s or %s", format, LogFormatConsole, LogFormatJSON)
	}

	return &Config{
		GRPCAddr:      getEnv("GRPC_ADDR", defaultGRPCAddr),
		HTTPAddr:      getEnv("HTTP_ADDR", defaultHTTPAddr),
		APIToken:      getEnv("API_TOKEN", defaultAPIToken),
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:     format,
		GeneratorSeed: seed,
	}, nil
}

// getEnv returns the variable or the fallback when unset or empty
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getUintEnv(key string, fallback uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
