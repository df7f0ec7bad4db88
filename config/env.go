package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string

	// Authentication
	JWTSecret     string
	AdminUser     string
	AdminPassword string

	// Festival
	CurrentYear string

	// Discord announcements
	DiscordBotToken  string
	DiscordChannelId string

	// Other
	KafkaBroker string
	ServerPort  string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		// Database - required
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),

		// Authentication - required
		JWTSecret:     getEnvWithDefault("JWT_SECRET", "dummyjwt"),
		AdminUser:     getEnvWithDefault("ADMIN_USER", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD"),

		// Year preselected on the winners form and the public results page
		CurrentYear: getEnvWithDefault("CURRENT_YEAR", "2025"),

		// Discord - optional
		DiscordBotToken:  os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordChannelId: os.Getenv("DISCORD_CHANNEL_ID"),

		// Other - optional
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		ServerPort:  getEnvWithDefault("PORT", "8000"),
	}

	appConfig = config
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Helper functions
func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsDevelopment returns true if running in development
func IsDevelopment() bool {
	return !IsProduction()
}
