package config

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Redis is nil when REDIS_URL is not configured; rate limiting then fails open.
var Redis *redis.Client

func ConnectRedis() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		log.Println("REDIS_URL not set, public rate limiting disabled")
		return
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Invalid REDIS_URL, rate limiting disabled: %v", err)
		return
	}

	Redis = redis.NewClient(opts)
}
