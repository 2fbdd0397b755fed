package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	Generation GenerationConfig `yaml:"generation"`
	Media      MediaConfig      `yaml:"media"`
	Bulk       BulkConfig       `yaml:"bulk"`
	Auth       AuthConfig       `yaml:"auth"`
	Site       SiteConfig       `yaml:"site"`
	SEO        SEOConfig        `yaml:"seo"`
	LogLevel   string           `yaml:"log_level"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Debug           bool          `yaml:"debug"`
	PageSize        int           `yaml:"page_size"`
	TagLimit        int           `yaml:"tag_limit"`
	PublicPerMinute int           `yaml:"public_per_minute"`
	PublicBurst     int           `yaml:"public_burst"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL is the DSN in URL form, as golang-migrate expects it.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

type RedisConfig struct {
	Address        string        `yaml:"address"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	Prefix         string        `yaml:"prefix"`
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl"`
}

// RabbitMQConfig configures record event publishing. Leaving URL empty
// disables it.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	QueueName  string `yaml:"queue_name"`
	BindingKey string `yaml:"binding_key"`
}

type GenerationConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

const (
	BlobBackendLocal = "local"
	BlobBackendS3    = "s3"
)

type MediaConfig struct {
	Backend      string        `yaml:"backend"`
	LocalRoot    string        `yaml:"local_root"`
	BaseURL      string        `yaml:"base_url"`
	S3           S3Config      `yaml:"s3"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRedirects int           `yaml:"max_redirects"`
	MinSize      int64         `yaml:"min_size"`
	MaxSize      int64         `yaml:"max_size"`
	UserAgent    string        `yaml:"user_agent"`
}

type S3Config struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`
	AccessKey     string `yaml:"access_key"`
	SecretKey     string `yaml:"secret_key"`
	Prefix        string `yaml:"prefix"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type BulkConfig struct {
	QueueTTL     time.Duration `yaml:"queue_ttl"`
	ItemDelay    time.Duration `yaml:"item_delay"`
	AdminURL     string        `yaml:"admin_url"`
	Session      string        `yaml:"session"`
	Timeout      time.Duration `yaml:"timeout"`
	StopRedirect time.Duration `yaml:"stop_redirect"`
	DoneRedirect time.Duration `yaml:"done_redirect"`
}

type AuthConfig struct {
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
}

type SiteConfig struct {
	URL string `yaml:"url"`
}

type SEOConfig struct {
	Plugins []string `yaml:"plugins"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.Address == "" {
		c.Redis.Address = "localhost:6379"
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "aiktp"
	}
	if c.Redis.IdempotencyTTL == 0 {
		c.Redis.IdempotencyTTL = 24 * time.Hour
	}
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "aiktp_sync"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "aiktp_records"
		}
		if c.RabbitMQ.BindingKey == "" {
			c.RabbitMQ.BindingKey = "#"
		}
	}
	if c.Generation.BaseURL == "" {
		c.Generation.BaseURL = "https://aiktp.com/api/ai.php"
	}
	if c.Generation.Timeout == 0 {
		c.Generation.Timeout = 120 * time.Second
	}
	if c.Generation.ConnectTimeout == 0 {
		c.Generation.ConnectTimeout = 30 * time.Second
	}
	// The write deadline must outlast a blocking generation call.
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = c.Generation.Timeout + 60*time.Second
	}
	if c.Media.Backend == "" {
		c.Media.Backend = BlobBackendLocal
	}
	if c.Media.LocalRoot == "" {
		c.Media.LocalRoot = "uploads"
	}
	if c.Media.BaseURL == "" && c.Site.URL != "" {
		c.Media.BaseURL = strings.TrimRight(c.Site.URL, "/") + "/wp-content/uploads"
	}
	if c.Media.Timeout == 0 {
		c.Media.Timeout = 30 * time.Second
	}
	if c.Media.MaxRedirects == 0 {
		c.Media.MaxRedirects = 5
	}
	if c.Media.MinSize == 0 {
		c.Media.MinSize = 100
	}
	if c.Media.MaxSize == 0 {
		c.Media.MaxSize = 10 << 20
	}
	if c.Media.UserAgent == "" {
		c.Media.UserAgent = "aiktp-sync/1.0"
	}
	if c.Bulk.QueueTTL == 0 {
		c.Bulk.QueueTTL = 5 * time.Minute
	}
	if c.Bulk.ItemDelay == 0 {
		c.Bulk.ItemDelay = 500 * time.Millisecond
	}
	if c.Bulk.AdminURL == "" {
		c.Bulk.AdminURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	if c.Bulk.Timeout == 0 {
		c.Bulk.Timeout = c.Generation.Timeout + 10*time.Second
	}
	if c.Bulk.StopRedirect == 0 {
		c.Bulk.StopRedirect = 5 * time.Second
	}
	if c.Bulk.DoneRedirect == 0 {
		c.Bulk.DoneRedirect = 3 * time.Second
	}
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 12 * time.Hour
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Server.WriteTimeout <= c.Generation.Timeout {
		return fmt.Errorf("validate config: server.write_timeout %s must exceed generation.timeout %s",
			c.Server.WriteTimeout, c.Generation.Timeout)
	}
	switch c.Media.Backend {
	case BlobBackendLocal:
	case BlobBackendS3:
		if c.Media.S3.Bucket == "" {
			return fmt.Errorf("validate config: media.s3.bucket is required for the s3 backend")
		}
	default:
		return fmt.Errorf("validate config: unknown media backend %q", c.Media.Backend)
	}
	for _, p := range c.SEO.Plugins {
		if p != "rankmath" && p != "yoast" {
			return fmt.Errorf("validate config: unknown seo plugin %q", p)
		}
	}
	return nil
}
