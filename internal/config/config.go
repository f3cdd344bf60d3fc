package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Mail     MailConfig
	Leave    LeaveConfig
}

type AppConfig struct {
	Env          string
	Port         string
	SeedDemoData bool
}

type PostgresConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr       string
	MaxRetries int
}

type KafkaConfig struct {
	Broker  string
	GroupID string
}

type AuthConfig struct {
	JWTSecret string
}

// MailConfig configures the SMTP relay used by the notification consumer.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LeaveConfig holds lifecycle settings. Location decides what "today" is
// when validating a submission's start date.
type LeaveConfig struct {
	Location *time.Location
}

// Load reads configuration from the environment, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	tz := getEnv("LEAVE_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_TIMEZONE %q: %w", tz, err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:          getEnv("APP_ENV", "development"),
			Port:         getEnv("PORT", "3000"),
			SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", false),
		},
		Postgres: PostgresConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       getEnv("DB_NAME", "go_leave"),
			Port:       getEnv("DB_PORT", "5432"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvAsInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr:       os.Getenv("REDIS_ADDR"),
			MaxRetries: getEnvAsInt("REDIS_MAX_RETRIES", 5),
		},
		Kafka: KafkaConfig{
			Broker:  os.Getenv("KAFKA_BROKER"),
			GroupID: getEnv("KAFKA_GROUP_ID", "go-leave-notification"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Mail: MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("MAIL_FROM", "leave-noreply@company.com"),
		},
		Leave: LeaveConfig{
			Location: loc,
		},
	}

	return cfg, nil
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
