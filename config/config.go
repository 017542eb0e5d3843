package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings, read once at startup.
type Config struct {
	Port         string
	StoreDriver  string // "sqlite3" or "mysql"
	StoreDSN     string
	JWTSecret    string
	DetectDelay  time.Duration
	AllowOrigins []string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. Every setting has a development default.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		StoreDriver:  getenv("STORE_DRIVER", "sqlite3"),
		StoreDSN:     getenv("STORE_DSN", "farmersupport.db"),
		JWTSecret:    getenv("JWT_SECRET", "farmersupport_secret_key"),
		DetectDelay:  time.Duration(getenvInt("DETECT_DELAY_MS", 3000)) * time.Millisecond,
		AllowOrigins: strings.Split(getenv("ALLOW_ORIGINS", "http://localhost:8081,http://localhost:19006"), ","),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s is not a number, using %d", key, fallback)
		return fallback
	}
	return n
}
