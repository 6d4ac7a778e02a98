package config

import (
	"os"
	"strconv"

	// loads a local .env file into the environment when present
	_ "github.com/joho/godotenv/autoload"
)

// Config carries everything the server reads from the environment.
type Config struct {
	Addr        string
	PostgresDSN string
	Debug       bool
	Engine      EngineConfig
}

// EngineConfig bounds the built-in search opponent.
type EngineConfig struct {
	Depth    int
	MoveTime int // milliseconds
}

// Load reads configuration from the environment, applying defaults
// for anything unset.
func Load() *Config {
	cfg := &Config{
		Addr:        getEnv("JANGGI_ADDR", ":8080"),
		PostgresDSN: os.Getenv("JANGGI_POSTGRES_DSN"),
		Debug:       getBool("JANGGI_DEBUG", false),
		Engine: EngineConfig{
			Depth:    getInt("JANGGI_ENGINE_DEPTH", 2),
			MoveTime: getInt("JANGGI_ENGINE_MOVE_TIME", 500),
		},
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
