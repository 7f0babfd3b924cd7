package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port        string        `mapstructure:"PORT"`
	Env         string        `mapstructure:"APP_ENV"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	JWTTTL      time.Duration `mapstructure:"JWT_TTL"`
	ClientURL   string        `mapstructure:"CLIENT_URL"`

	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	AuthRateLimit   int           `mapstructure:"AUTH_RATE_LIMIT"`
	AuthRateWindow  time.Duration `mapstructure:"AUTH_RATE_WINDOW"`
	KafkaBrokers    string        `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic      string        `mapstructure:"KAFKA_TOPIC"`
	StreamAPIKey    string        `mapstructure:"STREAM_API_KEY"`
	StreamAPISecret string        `mapstructure:"STREAM_API_SECRET"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CLIENT_URL into the CORS allow-list.
func (c *Config) AllowedOrigins() []string {
	return splitList(c.ClientURL)
}

// Brokers returns the Kafka broker list, empty when Kafka is disabled.
func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("CLIENT_URL", "http://localhost:5173")
	v.SetDefault("AUTH_RATE_LIMIT", 10)
	v.SetDefault("AUTH_RATE_WINDOW", "1m")
	v.SetDefault("KAFKA_TOPIC", "jigarafy.social-events")

	// Keys without a default are invisible to Unmarshal under AutomaticEnv.
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "REDIS_ADDR", "REDIS_PASSWORD",
		"KAFKA_BROKERS", "STREAM_API_KEY", "STREAM_API_SECRET",
	} {
		v.SetDefault(key, "")
	}
}

// LoadConfig loads the configuration from a .env file in dir and environment variables.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.AuthRateLimit <= 0 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT must be positive"))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
