package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "TEAMMIG"

type Settings struct {
	Profiles string          `mapstructure:"profiles"`
	Server   ServerSettings  `mapstructure:"server"`
	Pricing  PricingSettings `mapstructure:"pricing"`
	Cache    CacheSettings   `mapstructure:"cache"`
	Events   EventsSettings  `mapstructure:"events"`
	Strings  StringsSettings `mapstructure:"strings"`
}

type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PricingSettings struct {
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

type CacheSettings struct {
	Backend string        `mapstructure:"backend"` // memory, redis or none
	TTL     time.Duration `mapstructure:"ttl"`
	// WarmupInterval enables periodic refresh of every profile's prices. Zero disables it.
	WarmupInterval time.Duration `mapstructure:"warmup_interval"`
	Redis          RedisSettings `mapstructure:"redis"`
}

type RedisSettings struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type EventsSettings struct {
	// DSN of the postgres database events are written to. Empty keeps events in the log only.
	DSN string `mapstructure:"dsn"`
}

type StringsSettings struct {
	Source  string     `mapstructure:"source"` // embedded, http or s3
	BaseURL string     `mapstructure:"base_url"`
	Version string     `mapstructure:"version"`
	S3      S3Settings `mapstructure:"s3"`
}

type S3Settings struct {
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"

	StringsEmbedded = "embedded"
	StringsHTTP     = "http"
	StringsS3       = "s3"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("profiles", "profiles.ini")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("pricing.fetch_timeout", 10*time.Second)
	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.ttl", 15*time.Minute)
	v.SetDefault("cache.warmup_interval", 0)
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("events.dsn", "")
	v.SetDefault("strings.source", StringsEmbedded)
	v.SetDefault("strings.base_url", "")
	v.SetDefault("strings.version", "")
	v.SetDefault("strings.s3.bucket", "")
	v.SetDefault("strings.s3.prefix", "")
	v.SetDefault("strings.s3.region", "us-east-1")
	v.SetDefault("strings.s3.endpoint", "")
}

// LoadSettings reads settings from path (optional) and TEAMMIG_* environment
// variables, e.g. TEAMMIG_CACHE_BACKEND=redis.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	switch s.Cache.Backend {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return fmt.Errorf("unsupported cache backend %q", s.Cache.Backend)
	}
	switch s.Strings.Source {
	case StringsEmbedded:
	case StringsHTTP:
		if s.Strings.BaseURL == "" {
			return fmt.Errorf("strings.base_url is required for the http source")
		}
	case StringsS3:
		if s.Strings.S3.Bucket == "" {
			return fmt.Errorf("strings.s3.bucket is required for the s3 source")
		}
	default:
		return fmt.Errorf("unsupported strings source %q", s.Strings.Source)
	}
	if s.Pricing.FetchTimeout <= 0 {
		return fmt.Errorf("pricing.fetch_timeout must be positive")
	}
	return nil
}

func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
