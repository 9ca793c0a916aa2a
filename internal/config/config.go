package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by ENQUETE_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("ENQUETE_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// DatabaseURL is optional. Without it investigation history is disabled.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// APIKey protects the /api routes when set.
func APIKey() string {
	return os.Getenv("API_KEY")
}

// Evaluator returns the configured evaluator provider.
// Defaults to "embedded" if not set.
// Valid values: embedded, prolog
func Evaluator() string {
	e := os.Getenv("EVALUATOR")
	if e == "" {
		return "embedded"
	}
	return e
}

// PrologBinary returns the SWI-Prolog executable. Defaults to "swipl".
func PrologBinary() string {
	b := os.Getenv("PROLOG_BINARY")
	if b == "" {
		return "swipl"
	}
	return b
}

// PrologTimeout bounds a single Prolog run. Defaults to 10s.
func PrologTimeout() time.Duration {
	d, err := time.ParseDuration(os.Getenv("PROLOG_TIMEOUT"))
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// VerdictCacheTTL returns how long verdicts are cached.
// Defaults to 5m; "0" disables the cache.
func VerdictCacheTTL() time.Duration {
	raw := os.Getenv("VERDICT_CACHE_TTL")
	if raw == "" {
		return 5 * time.Minute
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 5 * time.Minute
	}
	return d
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
