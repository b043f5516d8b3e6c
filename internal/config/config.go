// Package config provides configuration management for the application.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Signature verification modes. The disabled mode exists for local
// development only and must never be used in production.
const (
	SignatureModeEnforced = "enforced"
	SignatureModeDisabled = "disabled"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Storage    StorageConfig    `mapstructure:"storage"`
	OCR        OCRConfig        `mapstructure:"ocr"`
	Twilio     TwilioConfig     `mapstructure:"twilio"`
	Meta       MetaConfig       `mapstructure:"meta"`
	Webhook    WebhookConfig    `mapstructure:"webhook"`
	Rates      RatesConfig      `mapstructure:"rates"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StorageConfig configures the S3 bucket receipt images are archived to.
// PublicBaseURL overrides the generated virtual-hosted URL when the bucket
// sits behind a CDN or a non-AWS endpoint.
type StorageConfig struct {
	Bucket        string `mapstructure:"bucket"`
	Prefix        string `mapstructure:"prefix"`
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type OCRConfig struct {
	URL            string               `mapstructure:"url"`
	AuthKey        string               `mapstructure:"auth_key"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// TwilioConfig holds the Twilio WhatsApp credentials. Outbound sends via
// Twilio are attempted only when all three values are present.
type TwilioConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	FromNumber string `mapstructure:"from_number"`
}

// Configured reports whether the Twilio provider can be used for sending.
func (t *TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

// MetaConfig holds the WhatsApp Cloud API credentials.
type MetaConfig struct {
	AccessToken   string `mapstructure:"access_token"`
	PhoneNumberID string `mapstructure:"phone_number_id"`
	AppSecret     string `mapstructure:"app_secret"`
	VerifyToken   string `mapstructure:"verify_token"`
}

// Configured reports whether the Meta provider can be used for sending.
func (m *MetaConfig) Configured() bool {
	return m.AccessToken != "" && m.PhoneNumberID != ""
}

// WebhookConfig controls inbound webhook handling. SignatureMode is either
// "enforced" or "disabled"; disabled skips signature checks entirely.
type WebhookConfig struct {
	SignatureMode string `mapstructure:"signature_mode"`
}

// VerificationEnforced reports whether inbound signatures must validate.
func (w *WebhookConfig) VerificationEnforced() bool {
	return w.SignatureMode != SignatureModeDisabled
}

type RatesConfig struct {
	ProviderURL     string `mapstructure:"provider_url"`
	RefreshMinutes  int    `mapstructure:"refresh_minutes"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("storage.prefix", "trucktrack")
	viper.SetDefault("storage.region", "us-east-1")
	viper.SetDefault("ocr.timeout", 30)
	viper.SetDefault("ocr.circuit_breaker.max_requests", 3)
	viper.SetDefault("ocr.circuit_breaker.interval", 60)
	viper.SetDefault("ocr.circuit_breaker.timeout", 60)
	viper.SetDefault("ocr.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("ocr.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("webhook.signature_mode", SignatureModeEnforced)
	viper.SetDefault("rates.refresh_minutes", 60)
	viper.SetDefault("rates.cache_ttl_minutes", 120)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Webhook.SignatureMode != SignatureModeEnforced && config.Webhook.SignatureMode != SignatureModeDisabled {
		return nil, fmt.Errorf("invalid webhook.signature_mode %q", config.Webhook.SignatureMode)
	}

	return &config, nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
