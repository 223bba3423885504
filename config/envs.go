package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Mode         string  // What main runs: play, compare or batch
	Strategy     string  // Search strategy the agent plans with (bfs, astar)
	TickRate     float64 // Ticks per second in play mode, 0 runs as fast as possible
	MaxTicks     int     // Upper bound on ticks per run, 0 for no bound
	Seed         int64   // Seed for the pursuer's random source, 0 seeds from the clock
	GreedyProb   float64 // Chance the pursuer takes the greedy step
	LayoutFile   string  // Optional YAML layout, empty uses the built-in maze
	BatchRuns    int     // Number of simulations in batch mode
	BatchWorkers int     // Concurrent workers in batch mode
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
		Mode:         getEnvWithDefault("MODE", "play"),
		Strategy:     getEnvWithDefault("STRATEGY", "bfs"),
		TickRate:     mustGetEnvAsFloat("TICK_RATE", 2),
		MaxTicks:     mustGetEnvAsInt("MAX_TICKS", 100),
		Seed:         int64(mustGetEnvAsInt("SEED", 0)),
		GreedyProb:   mustGetEnvAsFloat("GREEDY_PROB", 0.7),
		LayoutFile:   getEnvWithDefault("LAYOUT_FILE", ""),
		BatchRuns:    mustGetEnvAsInt("BATCH_RUNS", 1000),
		BatchWorkers: mustGetEnvAsInt("BATCH_WORKERS", 8),
	}
}

// mustGetEnvAsInt retrieves an environment variable as an integer, falling back to defaultValue
// when unset, and logs a fatal error if it cannot be parsed.
func mustGetEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// mustGetEnvAsFloat retrieves an environment variable as a float, falling back to defaultValue
// when unset, and logs a fatal error if it cannot be parsed.
func mustGetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
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
