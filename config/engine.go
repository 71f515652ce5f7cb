package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/camilomiori/POSAI-frontend-sub000/ai"
)

// EngineOptions assembles the intelligence engine configuration from the
// environment. With AI_SERVICE_URL unset the engine runs every
// computation locally.
func EngineOptions() ai.Options {
	opts := ai.Options{
		Version:     getEnv("AI_MODEL_VERSION", "2.1.0"),
		BaseURL:     os.Getenv("AI_SERVICE_URL"),
		EnableCache: getEnvBool("AI_ENABLE_CACHE", true),
		LocalOnly:   getEnvBool("AI_LOCAL_MODE", false),
		CacheTTL:    time.Duration(getEnvInt("AI_CACHE_TTL_MINUTES", 5)) * time.Minute,
	}

	if confidence := getEnvInt("AI_BASE_CONFIDENCE", 0); confidence > 0 {
		opts.BaseConfidence = confidence
	}
	if seed := getEnvInt("AI_RANDOM_SEED", 0); seed != 0 {
		opts.Seed = int64(seed)
	}
	if RedisClient != nil {
		opts.Tokens = RedisTokenStore{Client: RedisClient}
	}

	if opts.BaseURL == "" && !opts.LocalOnly {
		log.Println("⚠️  AI_SERVICE_URL not set, intelligence engine runs in local mode")
	}
	return opts
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
