package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/scamguard-vn/scamguard/internal/shared/config"
)

// ErrMissingDSN is returned when no database connection string was supplied.
var ErrMissingDSN = errors.New("database connection string is required (set DATABASE_URL or SCAMGUARD_DATABASE_DSN)")

// ErrInsecureJWTSecret is returned when release mode would sign tokens with the default key.
var ErrInsecureJWTSecret = errors.New("auth.jwt.secret must be set to a private value in release mode (set SCAMGUARD_AUTH_JWT_SECRET)")

// DefaultJWTSecret is the development signing key.
const DefaultJWTSecret = "change-me-in-production"

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Auth        sharedConfig.AuthConfig        `mapstructure:"auth"`
	Email       sharedConfig.EmailConfig       `mapstructure:"email"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	RateLimit   sharedConfig.RateLimitConfig   `mapstructure:"ratelimit"`
	ScamService sharedConfig.ScamServiceConfig `mapstructure:"scam_service"`
	Chat        sharedConfig.ChatConfig        `mapstructure:"chat"`
	Broadcast   sharedConfig.BroadcastConfig   `mapstructure:"broadcast"`
	Seed        sharedConfig.SeedConfig        `mapstructure:"seed"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (optional), .env and SCAMGUARD_* environment variables.
// configPath, when set, points at an explicit config file.
func Load(env string, configPath string) (*Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("SCAMGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// DATABASE_URL is the conventional name used by hosting platforms
	if config.Database.DSN == "" {
		config.Database.DSN = os.Getenv("DATABASE_URL")
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Validate checks settings the server cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return ErrMissingDSN
	}
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Chat.ReplyStrategy {
	case "rules", "ai":
	default:
		return fmt.Errorf("unsupported chat reply strategy %q", c.Chat.ReplyStrategy)
	}
	if c.isRelease() {
		secret := strings.TrimSpace(c.Auth.JWT.Secret)
		if secret == "" || secret == DefaultJWTSecret {
			return ErrInsecureJWTSecret
		}
	}
	return nil
}

func (c *Config) isRelease() bool {
	switch c.Server.Mode {
	case "release", "production", "prod":
		return true
	}
	return false
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5000", "http://localhost:5173"})
	v.SetDefault("server.public_blog_creation", false)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_tool", "goose")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", DefaultJWTSecret)
	v.SetDefault("auth.jwt.access_exp_minutes", 480)

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@scamguard.local")
	v.SetDefault("email.from_name", "ScamGuard")
	v.SetDefault("email.alert_recipients", []string{})

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.requests", 30)
	v.SetDefault("ratelimit.window_seconds", 60)

	v.SetDefault("scam_service.base_url", "http://localhost:8000")
	v.SetDefault("scam_service.api_key", "")
	v.SetDefault("scam_service.timeout_seconds", 60)
	v.SetDefault("scam_service.cache_ttl_seconds", 600)

	v.SetDefault("chat.reply_strategy", "rules")
	v.SetDefault("chat.rules_path", "")

	v.SetDefault("broadcast.base_url", "https://openapi.zalo.me/v3.0/oa")
	v.SetDefault("broadcast.access_token", "")
	v.SetDefault("broadcast.app_secret", "")
	v.SetDefault("broadcast.schedule_spec", "@every 1m")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.admin_username", "admin")
	v.SetDefault("seed.admin_password", "admin123")
}
