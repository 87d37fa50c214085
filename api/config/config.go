package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
// TEST_ENV_VALUE is not part of it; the env service resolves that value.
type Config struct {
	// Server ports
	HTTPPort string
	GRPCPort string
	// Optional: extra dotenv file consulted after the process environment
	EnvFile   string
	PageTitle string
	LogLevel  string
	LogFormat string
	// Path of the .env file that was loaded, if any
	DotenvPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	envPath, err := findDotenv()
	if err != nil {
		return nil, err
	}
	if envPath != "" {
		// Load never overrides variables already set in the process
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %v", err)
		}
		config.DotenvPath = envPath
	}

	vars := []struct {
		name   string
		envVar string
		def    string
	}{
		{"HTTPPort", EnvHTTPPort, DefaultHTTPPort},
		{"GRPCPort", EnvGRPCPort, DefaultGRPCPort},
		// Optional extra dotenv file
		{"EnvFile", EnvEnvFile, ""},
		{"PageTitle", EnvPageTitle, DefaultPageTitle},
		{"LogLevel", EnvLogLevel, DefaultLogLevel},
		{"LogFormat", EnvLogFormat, DefaultLogFormat},
	}

	for _, v := range vars {
		value := os.Getenv(v.envVar)
		if value == "" {
			value = v.def
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid %s %q: want debug, info, warn or error", EnvLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid %s %q: want json or text", EnvLogFormat, c.LogFormat)
	}
	if c.EnvFile != "" {
		if _, err := os.Stat(c.EnvFile); err != nil {
			return fmt.Errorf("env file %s: %w", c.EnvFile, err)
		}
	}
	return nil
}

// HTTPAddr is the listen address for the HTTP gateway.
func (c *Config) HTTPAddr() string { return ":" + c.HTTPPort }

// GRPCAddr is the listen address for the gRPC server.
func (c *Config) GRPCAddr() string { return ":" + c.GRPCPort }

// findDotenv walks up from the working directory and returns the first .env
// file it finds, or "" when there is none.
func findDotenv() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	for {
		envPath := filepath.Join(currentDir, ".env")
		if fi, err := os.Stat(envPath); err == nil && !fi.IsDir() {
			return envPath, nil
		}
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			return "", nil
		}
		// Move up one directory
		currentDir = parent
	}
}
