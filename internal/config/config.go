package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Detector DetectorConfig
	Cache    CacheConfig
	Export   ExportConfig
}

type DetectorConfig struct {
	URL        string // defaults to http://localhost:8000
	TimeoutSec int    // defaults to 30
}

func (c DetectorConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

type CacheConfig struct {
	TTLMinutes int // detection result lifetime, defaults to 10
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type ExportConfig struct {
	MaxSize int // longest exported side in pixels, 0 keeps the source size
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Detector: DetectorConfig{
			URL:        envString("DETECTOR_URL", "http://localhost:8000"),
			TimeoutSec: envInt("DETECTOR_TIMEOUT_SEC", 30),
		},
		Cache: CacheConfig{
			TTLMinutes: envInt("DETECTION_CACHE_TTL_MIN", 10),
		},
		Export: ExportConfig{
			MaxSize: envInt("EXPORT_MAX_SIZE", 0),
		},
	}
}
