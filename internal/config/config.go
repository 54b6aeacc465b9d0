package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            string
	GinMode         string
	FXAppID         string
	FXBaseURL       string
	WorldBankURL    string
	CacheDir        string
	PlayAPIURL      string
	AppStoreAPIURL  string
	FXCacheTTL      time.Duration
	PPPCacheTTL     time.Duration
	HTTPTimeout     time.Duration
	BulkConcurrency int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		FXAppID:         getEnv("OXR_APP_ID", ""),
		FXBaseURL:       getEnv("FX_BASE_URL", "https://openexchangerates.org/api"),
		WorldBankURL:    getEnv("WORLDBANK_BASE_URL", "https://api.worldbank.org/v2"),
		CacheDir:        getEnv("CACHE_DIR", defaultCacheDir()),
		PlayAPIURL:      getEnv("PLAY_API_URL", "http://localhost:8091"),
		AppStoreAPIURL:  getEnv("APPSTORE_API_URL", "http://localhost:8092"),
		FXCacheTTL:      getDuration("FX_CACHE_TTL", 6*time.Hour),
		PPPCacheTTL:     getDuration("PPP_CACHE_TTL", 7*24*time.Hour),
		HTTPTimeout:     getDuration("HTTP_TIMEOUT", 30*time.Second),
		BulkConcurrency: getInt("BULK_CONCURRENCY", 1),
	}
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir + "/storefront-pricing"
	}
	return ".cache/storefront-pricing"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
		log.Warn().Str("key", key).Str("value", value).Msg("invalid integer, using default")
	}
	return fallback
}
