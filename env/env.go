package env

import (
	"fmt"
	"os"
	"strconv"
)

const (
	ShellMode  = "shell"
	ServerMode = "server"

	JSONStorageDriver    = "json"
	MongoDBStorageDriver = "mongodb"
)

type Env struct {
	Mode    string
	Server  ServerConfig
	Storage StorageConfig
	MongoDB MongoDBConfig
}

type ServerConfig struct {
	Port int
}

type StorageConfig struct {
	Driver string
	Path   string
}

type MongoDBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DB       string
}

var setupEnv = false
var env = Env{}

// GetEnv parses environment variables once and returns the cached result afterward
func GetEnv() (*Env, error) {

	if !setupEnv {

		parsed, err := ParseEnv()
		if err != nil {
			return nil, err
		}

		env = *parsed
		setupEnv = true
	}

	return &env, nil
}

func ParseEnv() (*Env, error) {

	mode := getString("APP_MODE", ShellMode)
	if mode != ShellMode && mode != ServerMode {
		return nil, fmt.Errorf("APP_MODE must be %q or %q, got %q", ShellMode, ServerMode, mode)
	}

	storageDriver := getString("STORAGE_DRIVER", JSONStorageDriver)
	if storageDriver != JSONStorageDriver && storageDriver != MongoDBStorageDriver {
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", JSONStorageDriver, MongoDBStorageDriver, storageDriver)
	}

	serverPort, err := getInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}

	mongoDBPort, err := getInt("MONGODB_PORT", 27017)
	if err != nil {
		return nil, err
	}

	return &Env{
		Mode: mode,
		Server: ServerConfig{
			Port: serverPort,
		},
		Storage: StorageConfig{
			Driver: storageDriver,
			Path:   getString("STORAGE_PATH", "library_data.json"),
		},
		MongoDB: MongoDBConfig{
			Host:     getString("MONGODB_HOST", "localhost"),
			Port:     mongoDBPort,
			User:     os.Getenv("MONGODB_USER"),
			Password: os.Getenv("MONGODB_PASSWORD"),
			DB:       getString("MONGODB_NAME", "library_catalog"),
		},
	}, nil
}

func getString(key, fallback string) string {

	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getInt(key string, fallback int) (int, error) {

	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return parsed, nil
}
