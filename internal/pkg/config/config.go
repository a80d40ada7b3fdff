package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/piresc/transferflow/internal/pkg/models"
)

// InitConfig builds the configuration from the environment. In the local environment the
// variables are first loaded from the .env file at configPath.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return load(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "payments")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "transferflow")

	v.SetDefault("CORE_BANKING_URL", "http://localhost:9100")
	v.SetDefault("CORE_BANKING_TIMEOUT", "5s")

	v.SetDefault("PAYMENT_DEFAULT_CODE", "289")
	v.SetDefault("PAYMENT_ASYNC_TIMEOUT", "10s")
	v.SetDefault("PAYMENT_SESSION_TTL", "30m")

	v.SetDefault("OTP_LENGTH", 6)
	v.SetDefault("OTP_TTL", "5m")
	v.SetDefault("OTP_MAX_ATTEMPTS", 3)
	v.SetDefault("OTP_CHANNEL", "email")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "json")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("NEW_RELIC_LOGS_ENABLED", false)
}

func load(v *viper.Viper) *models.Config {
	cfg := &models.Config{}

	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENV")
	cfg.App.Debug = v.GetBool("APP_DEBUG")
	cfg.App.Version = v.GetString("APP_VERSION")

	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	cfg.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	cfg.Database.Driver = v.GetString("DB_DRIVER")
	cfg.Database.Host = v.GetString("DB_HOST")
	cfg.Database.Port = v.GetInt("DB_PORT")
	cfg.Database.Username = v.GetString("DB_USERNAME")
	cfg.Database.Password = v.GetString("DB_PASSWORD")
	cfg.Database.Database = v.GetString("DB_DATABASE")
	cfg.Database.SSLMode = v.GetString("DB_SSL_MODE")
	cfg.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	cfg.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	cfg.Redis.Host = v.GetString("REDIS_HOST")
	cfg.Redis.Port = v.GetInt("REDIS_PORT")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")
	cfg.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	cfg.NATS.URL = v.GetString("NATS_URL")
	cfg.NSQ.Address = v.GetString("NSQ_ADDRESS")

	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	cfg.JWT.Issuer = v.GetString("JWT_ISSUER")

	cfg.Services.CoreBankingURL = v.GetString("CORE_BANKING_URL")
	cfg.Services.CoreBankingTimeout = v.GetDuration("CORE_BANKING_TIMEOUT")

	cfg.Payment.DefaultCode = v.GetString("PAYMENT_DEFAULT_CODE")
	cfg.Payment.AsyncTimeout = v.GetDuration("PAYMENT_ASYNC_TIMEOUT")
	cfg.Payment.SessionTTL = v.GetDuration("PAYMENT_SESSION_TTL")

	cfg.OTP.Length = v.GetInt("OTP_LENGTH")
	cfg.OTP.TTL = v.GetDuration("OTP_TTL")
	cfg.OTP.MaxAttempts = v.GetInt("OTP_MAX_ATTEMPTS")
	cfg.OTP.Channel = v.GetString("OTP_CHANNEL")

	cfg.Logger.Level = v.GetString("LOG_LEVEL")
	cfg.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	cfg.Logger.Type = v.GetString("LOG_TYPE")

	cfg.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	cfg.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	cfg.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	cfg.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")

	if cfg.Payment.AsyncTimeout <= 0 {
		cfg.Payment.AsyncTimeout = 10 * time.Second
	}
	return cfg
}
