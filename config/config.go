package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Analysis history
	Postgres PostgresConfig

	// Redis - Analysis caching
	Redis RedisConfig

	// Kafka - Event streaming
	Kafka KafkaConfig

	// JWT - Authentication
	JWT JWTConfig

	// YouTube - Video and comment retrieval
	YouTube YouTubeConfig

	// Classifier - External sentiment service
	Classifier ClassifierConfig

	// Analysis - Pipeline tuning
	Analysis AnalysisConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// JWTConfig is used to verify tokens (same secret/issuer as the auth
// service). This service does not issue tokens.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// YouTubeConfig is the configuration for the YouTube Data API
type YouTubeConfig struct {
	APIKey      string
	BaseURL     string
	Timeout     int // in seconds
	MaxComments int
}

// ClassifierConfig is the configuration for the sentiment service
type ClassifierConfig struct {
	URL             string
	RequestTimeout  int // in seconds
	HealthTimeout   int // in seconds
	ClassifyTimeout int // in seconds, covers the whole batch fan-out
}

// AnalysisConfig is the configuration for the analysis pipeline
type AnalysisConfig struct {
	CacheTTL int // in seconds
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	viper.SetConfigName("trustrate-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/trustrate/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// YouTube
	cfg.YouTube.APIKey = viper.GetString("youtube.api_key")
	cfg.YouTube.BaseURL = viper.GetString("youtube.base_url")
	cfg.YouTube.Timeout = viper.GetInt("youtube.timeout")
	cfg.YouTube.MaxComments = viper.GetInt("youtube.max_comments")

	// Classifier
	cfg.Classifier.URL = viper.GetString("classifier.url")
	cfg.Classifier.RequestTimeout = viper.GetInt("classifier.request_timeout")
	cfg.Classifier.HealthTimeout = viper.GetInt("classifier.health_timeout")
	cfg.Classifier.ClassifyTimeout = viper.GetInt("classifier.classify_timeout")

	// Analysis
	cfg.Analysis.CacheTTL = viper.GetInt("analysis.cache_ttl")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "trustrate")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "trustrate.events")

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "trustrate-auth-service")
	viper.SetDefault("jwt.audience", []string{"trustrate-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// YouTube
	viper.SetDefault("youtube.base_url", "")
	viper.SetDefault("youtube.timeout", 15)
	viper.SetDefault("youtube.max_comments", 1000)

	// Classifier
	viper.SetDefault("classifier.url", "http://localhost:8000")
	viper.SetDefault("classifier.request_timeout", 30)
	viper.SetDefault("classifier.health_timeout", 3)
	viper.SetDefault("classifier.classify_timeout", 120)

	// Analysis
	viper.SetDefault("analysis.cache_ttl", 1800) // 30 minutes
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}

	// Validate YouTube
	if cfg.YouTube.APIKey == "" {
		return fmt.Errorf("youtube.api_key is required")
	}

	// Validate Classifier
	if cfg.Classifier.URL == "" {
		return fmt.Errorf("classifier.url is required")
	}

	return nil
}
