package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Engine Configuration
	Engine  EngineConfig
	Archive ArchiveConfig

	// External Services Configuration
	Redis         RedisConfig
	MinIO         MinIOConfig
	Discord       DiscordConfig
	Collaborators CollaboratorConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EngineConfig holds the monitoring engine tunables.
type EngineConfig struct {
	// TickInterval is how often the scheduler loop runs.
	TickInterval time.Duration
	// TrendUpThreshold / TrendDownThreshold classify velocity into a trend.
	TrendUpThreshold   float64
	TrendDownThreshold float64
	// HistoryRetention bounds the per-account total-score history used for
	// lookback-window conditions.
	HistoryRetention time.Duration

	// Batch workflow tunables.
	BatchConcurrency       int
	HighPriorityThreshold  float64
	ReadyToSendThreshold   float64
	NurtureFloor           float64
	ResearchWeight         float64
	IntentWeight           float64

	// ContentTimeout bounds generate_content delegation so a slow
	// generation never holds a tick hostage.
	ContentTimeout time.Duration
	// NotifyTimeout bounds fire-and-forget notification delivery.
	NotifyTimeout time.Duration

	// Daily digest.
	DigestEnabled  bool
	DigestInterval time.Duration
}

// ArchiveConfig holds the retention sweeper configuration.
type ArchiveConfig struct {
	Enabled       bool
	SweepInterval time.Duration
	// AlertTTL applies to acknowledged alerts only.
	AlertTTL time.Duration
	// IntentIdleTTL evicts account state not updated for this long.
	IntentIdleTTL time.Duration
	Bucket        string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	// Connection pool settings
	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// MinIOConfig is the configuration for the MinIO archive sink.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// DiscordConfig is the configuration for Discord webhook notifications.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// CollaboratorConfig holds the endpoints of the external collaborators
// consumed by the engine (research/intent, content generation, sequencing,
// competitor activity feed).
type CollaboratorConfig struct {
	ResearchBaseURL   string
	ContentBaseURL    string
	SequencerBaseURL  string
	CompetitorBaseURL string
	Timeout           time.Duration
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("monitor-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/monitor/")

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

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Engine
	cfg.Engine.TickInterval = viper.GetDuration("engine.tick_interval")
	cfg.Engine.TrendUpThreshold = viper.GetFloat64("engine.trend_up_threshold")
	cfg.Engine.TrendDownThreshold = viper.GetFloat64("engine.trend_down_threshold")
	cfg.Engine.HistoryRetention = viper.GetDuration("engine.history_retention")
	cfg.Engine.BatchConcurrency = viper.GetInt("engine.batch_concurrency")
	cfg.Engine.HighPriorityThreshold = viper.GetFloat64("engine.high_priority_threshold")
	cfg.Engine.ReadyToSendThreshold = viper.GetFloat64("engine.ready_to_send_threshold")
	cfg.Engine.NurtureFloor = viper.GetFloat64("engine.nurture_floor")
	cfg.Engine.ResearchWeight = viper.GetFloat64("engine.research_weight")
	cfg.Engine.IntentWeight = viper.GetFloat64("engine.intent_weight")
	cfg.Engine.ContentTimeout = viper.GetDuration("engine.content_timeout")
	cfg.Engine.NotifyTimeout = viper.GetDuration("engine.notify_timeout")
	cfg.Engine.DigestEnabled = viper.GetBool("engine.digest_enabled")
	cfg.Engine.DigestInterval = viper.GetDuration("engine.digest_interval")

	// Archive
	cfg.Archive.Enabled = viper.GetBool("archive.enabled")
	cfg.Archive.SweepInterval = viper.GetDuration("archive.sweep_interval")
	cfg.Archive.AlertTTL = viper.GetDuration("archive.alert_ttl")
	cfg.Archive.IntentIdleTTL = viper.GetDuration("archive.intent_idle_ttl")
	cfg.Archive.Bucket = viper.GetString("archive.bucket")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.UseTLS = viper.GetBool("redis.use_tls")
	cfg.Redis.MaxRetries = viper.GetInt("redis.max_retries")
	cfg.Redis.MinIdleConns = viper.GetInt("redis.min_idle_conns")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")
	cfg.Redis.PoolTimeout = viper.GetDuration("redis.pool_timeout")
	cfg.Redis.ConnMaxIdleTime = viper.GetDuration("redis.conn_max_idle_time")
	cfg.Redis.ConnMaxLifetime = viper.GetDuration("redis.conn_max_lifetime")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Collaborators
	cfg.Collaborators.ResearchBaseURL = viper.GetString("collaborators.research_base_url")
	cfg.Collaborators.ContentBaseURL = viper.GetString("collaborators.content_base_url")
	cfg.Collaborators.SequencerBaseURL = viper.GetString("collaborators.sequencer_base_url")
	cfg.Collaborators.CompetitorBaseURL = viper.GetString("collaborators.competitor_base_url")
	cfg.Collaborators.Timeout = viper.GetDuration("collaborators.timeout")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8082)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Engine
	viper.SetDefault("engine.tick_interval", 60*time.Second)
	viper.SetDefault("engine.trend_up_threshold", 2.0)
	viper.SetDefault("engine.trend_down_threshold", -2.0)
	viper.SetDefault("engine.history_retention", 48*time.Hour)
	viper.SetDefault("engine.batch_concurrency", 4)
	viper.SetDefault("engine.high_priority_threshold", 85.0)
	viper.SetDefault("engine.ready_to_send_threshold", 80.0)
	viper.SetDefault("engine.nurture_floor", 60.0)
	viper.SetDefault("engine.research_weight", 0.4)
	viper.SetDefault("engine.intent_weight", 0.6)
	viper.SetDefault("engine.content_timeout", 2*time.Minute)
	viper.SetDefault("engine.notify_timeout", 10*time.Second)
	viper.SetDefault("engine.digest_enabled", false)
	viper.SetDefault("engine.digest_interval", 24*time.Hour)

	// Archive
	viper.SetDefault("archive.enabled", false)
	viper.SetDefault("archive.sweep_interval", time.Hour)
	viper.SetDefault("archive.alert_ttl", 7*24*time.Hour)
	viper.SetDefault("archive.intent_idle_ttl", 30*24*time.Hour)
	viper.SetDefault("archive.bucket", "monitor-archive")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.use_tls", false)
	viper.SetDefault("redis.max_retries", 3)
	viper.SetDefault("redis.min_idle_conns", 10)
	viper.SetDefault("redis.pool_size", 100)
	viper.SetDefault("redis.pool_timeout", 4*time.Second)
	viper.SetDefault("redis.conn_max_idle_time", 5*time.Minute)
	viper.SetDefault("redis.conn_max_lifetime", 30*time.Minute)

	// Collaborators
	viper.SetDefault("collaborators.timeout", 30*time.Second)
}

func validate(cfg *Config) error {
	// Validate Redis (signal source + health checks)
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Engine
	if cfg.Engine.TickInterval <= 0 {
		return fmt.Errorf("engine.tick_interval must be positive")
	}
	if cfg.Engine.BatchConcurrency < 1 {
		return fmt.Errorf("engine.batch_concurrency must be at least 1")
	}

	// Validate Archive (MinIO only needed when archiving is on)
	if cfg.Archive.Enabled {
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required when archive.enabled is true")
		}
		if cfg.Archive.Bucket == "" {
			return fmt.Errorf("archive.bucket is required when archive.enabled is true")
		}
	}

	return nil
}
