package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string // Host IP for the server
	RESTPort           int    // Port for the REST API
	GinMode            string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr          string // Address of the redis server used for cached solutions
	RedisPassword      string // Password for the redis server
	RedisDB            int    // Redis logical database
	SolutionTTLSeconds int    // Lifetime of a cached solution
	DBURI              string // Connection URI for the maze database
	DBName             string // Name of the database
	JWTSecret          string // Secret key for JWT signing
	JWTIssuer          string // Issuer claim for JWTs
	MaxMazeCells       int    // Largest maze (width*height characters) accepted for solving
	PlaybackDelayMS    int    // Delay between two playback steps
}

// Load initializes and returns the application configuration.
// It loads environment variables from a .env file when one is present.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:             mustGetEnv("HOST_IP"),
		RESTPort:           mustGetEnvAsInt("REST_PORT"),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:          mustGetEnv("REDIS_ADDR"),
		RedisPassword:      getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsIntWithDefault("REDIS_DB", 0),
		SolutionTTLSeconds: getEnvAsIntWithDefault("SOLUTION_TTL_SECONDS", 3600),
		DBURI:              mustGetEnv("DB_URI"),
		DBName:             mustGetEnv("DB_NAME"),
		JWTSecret:          mustGetEnv("JWT_SECRET"),
		JWTIssuer:          mustGetEnv("JWT_ISSUER"),
		MaxMazeCells:       getEnvAsIntWithDefault("MAX_MAZE_CELLS", 250000),
		PlaybackDelayMS:    getEnvAsIntWithDefault("PLAYBACK_DELAY_MS", 200),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values are fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
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
