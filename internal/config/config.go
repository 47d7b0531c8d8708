package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Gemini   GeminiConfig
	Scoring  ScoringConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogJSON     bool
	Debug       bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	Secret       string
	ClientSecret string
	ExpiresIn    time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ScoringConfig struct {
	// RescoreOnEdit re-runs the heuristic scorer for every job when a
	// candidate profile is edited. Off by default to avoid score churn
	// on routine edits.
	RescoreOnEdit bool

	// BatchAnalysisDelay spaces successive AI calls during a batch run.
	BatchAnalysisDelay time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "talent-sonar"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
		LogJSON:     parseBool(opt("LOG_JSON", "false")),
		Debug:       parseBool(opt("LOG_DEBUG", "false")),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", "localhost"),
		DBPort:     opt("DB_PORT", "5432"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:      parseDuration(opt("DB_CONNECT_TIMEOUT", "5s")),
		PoolMaxConns:        int32(parseInt(opt("DB_POOL_MAX_CONNS", "10"))),
		PoolMinConns:        int32(parseInt(opt("DB_POOL_MIN_CONNS", "0"))),
		PoolMaxConnLifetime: parseDuration(opt("DB_POOL_MAX_CONN_LIFETIME", "1h")),
		PoolMaxConnIdleTime: parseDuration(opt("DB_POOL_MAX_CONN_IDLE_TIME", "30m")),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      parseDuration(opt("REDIS_TTL", "5m")),
	}

	cfg.JWT = JWTConfig{
		Secret:       req("JWT_SECRET"),
		ClientSecret: req("DASHBOARD_CLIENT_SECRET"),
		ExpiresIn:    parseDuration(opt("JWT_EXPIRES_IN", "12h")),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:  opt("GEMINI_MODEL", ""),
	}

	cfg.Scoring = ScoringConfig{
		RescoreOnEdit:      parseBool(opt("RESCORE_ON_EDIT", "false")),
		BatchAnalysisDelay: parseDuration(opt("BATCH_ANALYSIS_DELAY", "500ms")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseDuration(s string) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
