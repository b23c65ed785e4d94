package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Neo4j    Neo4jConfig
	Mapping  MappingConfig
	App      AppConfig

	// EnvFile is set when a .env file was loaded.
	EnvFile bool
}

type ServerConfig struct {
	Port           string
	MaxUploadMB    int
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	// DSN overrides the discrete fields for the pgx pool when set.
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type Neo4jConfig struct {
	URI      string
	User     string
	Password string
	Database string
}

type MappingConfig struct {
	SIFRules      []string
	RetentionDays int
	RetentionCron string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	envFile := godotenv.Load() == nil

	env := &reader{}
	cfg := &Config{
		Server: ServerConfig{
			Port:           env.str("PORT", "8080"),
			MaxUploadMB:    env.integer("MAX_UPLOAD_MB", 32),
			RateLimitRPS:   env.number("RATE_LIMIT_RPS", 5),
			RateLimitBurst: env.integer("RATE_LIMIT_BURST", 10),
			AllowedOrigins: env.list("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:     env.str("DB_HOST", "localhost"),
			Port:     env.integer("DB_PORT", 5432),
			User:     env.str("DB_USER", "postgres"),
			Password: env.str("DB_PASSWORD", ""),
			Name:     env.str("DB_NAME", "biopax"),
			DSN:      env.str("DB_DSN", ""),
		},
		Redis: RedisConfig{
			Addr:     env.str("REDIS_ADDR", ""),
			Password: env.str("REDIS_PASSWORD", ""),
			DB:       env.integer("REDIS_DB", 0),
			CacheTTL: time.Duration(env.integer("CACHE_TTL_MINUTES", 60)) * time.Minute,
		},
		Neo4j: Neo4jConfig{
			URI:      env.str("NEO4J_URI", ""),
			User:     env.str("NEO4J_USER", "neo4j"),
			Password: env.str("NEO4J_PASSWORD", ""),
			Database: env.str("NEO4J_DATABASE", "neo4j"),
		},
		Mapping: MappingConfig{
			SIFRules:      env.list("SIF_RULES", nil),
			RetentionDays: env.integer("RETENTION_DAYS", 30),
			RetentionCron: env.str("RETENTION_CRON", "0 3 * * *"),
		},
		App: AppConfig{
			Environment: env.str("APP_ENV", "development"),
			LogLevel:    env.str("LOG_LEVEL", "info"),
			Version:     env.str("APP_VERSION", "1.0.0"),
		},
		EnvFile: envFile,
	}

	if len(env.invalid) > 0 {
		return nil, fmt.Errorf("invalid value for %s", strings.Join(env.invalid, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if c.Database.Host == "" && c.Database.DSN == "" {
		return fmt.Errorf("DB_HOST or DB_DSN is required")
	}
	if c.Redis.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL_MINUTES must not be negative")
	}
	if c.Mapping.RetentionDays < 0 {
		return fmt.Errorf("RETENTION_DAYS must not be negative")
	}

	return nil
}

// UploadLimit is MaxUploadMB in bytes.
func (c *Config) UploadLimit() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

// reader looks up environment variables and remembers which ones failed
// to parse.
type reader struct {
	invalid []string
}

func (r *reader) str(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (r *reader) integer(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.invalid = append(r.invalid, key)
		return defaultValue
	}

	return value
}

func (r *reader) number(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		r.invalid = append(r.invalid, key)
		return defaultValue
	}

	return value
}

func (r *reader) list(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
