package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// authTokenKey is where the POS session layer persists the bearer
// credential the intelligence core attaches to outbound requests.
const authTokenKey = "pos:auth:token"

func ConnectRedis() {
	// read Redis URL
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(fmt.Sprintf("❌ invalid REDIS_URL: %v", err))
	}

	RedisClient = redis.NewClient(opt)

	// test connection
	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("❌ failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis:", res)
}

// RedisTokenStore reads the bearer credential from the persisted
// key-value store. A missing key is not an error: it simply means no
// Authorization header is sent.
type RedisTokenStore struct {
	Client *redis.Client
}

func (s RedisTokenStore) Token(ctx context.Context) (string, error) {
	token, err := s.Client.Get(ctx, authTokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read auth token: %w", err)
	}
	return token, nil
}
