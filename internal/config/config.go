package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded by a .env file.
type Config struct {
	Port         string
	DatabaseURL  string
	APIBaseURL   string
	APIRateLimit float64
	APIBurst     int
	GeminiAPIKey string
	GeminiModel  string
	WizardTTL    time.Duration
	CORSOrigins  []string
}

// Load reads .env (if present) and the process environment.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil {
		log.Println("⚠️  No .env file loaded, using process environment")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"),
		APIBaseURL:   os.Getenv("API_BASE_URL"),
		APIRateLimit: getFloat("API_RATE_LIMIT", 10),
		APIBurst:     getInt("API_RATE_BURST", 5),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		WizardTTL:    getDuration("WIZARD_TTL", time.Hour),
		CORSOrigins:  getList("CORS_ORIGINS"),
	}
}

// UseRemoteAPI reports whether wizards submit to the external API
// instead of the local database.
func (c *Config) UseRemoteAPI() bool {
	return c.APIBaseURL != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
