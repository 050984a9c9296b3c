package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP               string // Host IP for the server
	RESTPort             int    // Port for the REST API
	GinMode              string // Mode for the Gin framework (e.g., release, debug, test)
	GeneratorSeed        int64  // Seed for maze generation; 0 means time-seeded
	MazeMaxDimension     int    // Upper bound on requested maze width/height
	MazeDefaultDimension int    // Dimension used when a request omits a size
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:               getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:             getEnvIntWithDefault("REST_PORT", 8080),
		GinMode:              getEnvWithDefault("GIN_MODE", "release"),
		GeneratorSeed:        int64(getEnvIntWithDefault("GENERATOR_SEED", 0)),
		MazeMaxDimension:     getEnvIntWithDefault("MAZE_MAX_DIMENSION", 99),
		MazeDefaultDimension: getEnvIntWithDefault("MAZE_DEFAULT_DIMENSION", 21),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set. Values that cannot be parsed are fatal.
func getEnvIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
