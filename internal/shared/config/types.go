package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host               string   `mapstructure:"host"`
	Port               int      `mapstructure:"port"`
	Mode               string   `mapstructure:"mode"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	PublicBlogCreation bool     `mapstructure:"public_blog_creation"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Driver is one of postgres, mysql or sqlite.
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	MigrationTool   string `mapstructure:"migration_tool"`
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type EmailConfig struct {
	Enabled         bool     `mapstructure:"enabled"`
	SMTPHost        string   `mapstructure:"smtp_host"`
	SMTPPort        int      `mapstructure:"smtp_port"`
	SMTPUser        string   `mapstructure:"smtp_user"`
	SMTPPassword    string   `mapstructure:"smtp_password"`
	FromAddress     string   `mapstructure:"from_address"`
	FromName        string   `mapstructure:"from_name"`
	AlertRecipients []string `mapstructure:"alert_recipients"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

func (r *RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// ScamServiceConfig points at the companion scraping / AI service.
type ScamServiceConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	APIKey          string `mapstructure:"api_key"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}

func (s *ScamServiceConfig) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSeconds) * time.Second
}

func (s *ScamServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type ChatConfig struct {
	ReplyStrategy string `mapstructure:"reply_strategy"`
	RulesPath     string `mapstructure:"rules_path"`
}

type BroadcastConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	AccessToken  string `mapstructure:"access_token"`
	AppSecret    string `mapstructure:"app_secret"`
	ScheduleSpec string `mapstructure:"schedule_spec"`
}

type SeedConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}
