package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

// Keys that have no sane default and must be set before startup.
var requiredKeys = []string{
	"JWT_ACCESS_SECRET",
	"JWT_REFRESH_SECRET",
	"POSTGRES_DB_ADDRESS",
	"POSTGRES_USER",
	"POSTGRES_PASSWORD",
	"POSTGRES_DB",
}

type Config struct {
}

func New() *Config {
	once.Do(func() {
		if err := godotenv.Load("./configs/.env"); err != nil {
			log.Println("no .env file loaded, relying on process environment")
		}
		for _, key := range requiredKeys {
			if os.Getenv(key) == "" {
				log.Fatalf("required env %s is not set", key)
			}
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
