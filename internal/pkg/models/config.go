package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Services ServicesConfig
	Payment  PaymentConfig
	OTP      OTPConfig
	Logger   LoggerConfig
	NewRelic NewRelicConfig
}

// ServicesConfig contains URLs for upstream services
type ServicesConfig struct {
	CoreBankingURL     string
	CoreBankingTimeout time.Duration
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address used for OTP delivery
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PaymentConfig contains settings of the payment flow
type PaymentConfig struct {
	DefaultCode  string        `json:"default_code"`
	AsyncTimeout time.Duration `json:"async_timeout"` // upper bound for currency and catalog lookups
	SessionTTL   time.Duration `json:"session_ttl"`
}

// OTPConfig contains one-time password settings
type OTPConfig struct {
	Length      int           `json:"length"`
	TTL         time.Duration `json:"ttl"`
	MaxAttempts int           `json:"max_attempts"`
	Channel     string        `json:"channel"` // email or sms
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // json or console
}

// NewRelicConfig contains New Relic agent settings
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
}
