package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"

	defaultAnonymousDailyLimit     = 3
	defaultAuthenticatedDailyLimit = 10
	defaultRetentionDays           = 30
	defaultQuotaTimezone           = "UTC"
	defaultSweepSchedule           = "@daily"
	defaultAnalysisTimeout         = 60 * time.Second
	defaultAnalyzeRatePerSecond    = 1
	defaultAnalyzeRateBurst        = 5
	defaultHistoryLimit            = 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`

		// TrustedProxies lists the CIDR ranges of proxies whose X-Forwarded-For
		// is believed. Empty means the socket peer is the client.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`

		// AnalyzeRateLimit throttles the analyze endpoint per client address
		AnalyzeRateLimit RateLimitConfig `json:"analyzeRateLimit" yaml:"analyzeRateLimit"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis is only required when quota.backend is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Vault holds the master key used to seal user-supplied provider keys
	Vault VaultConfig `json:"vault" yaml:"vault"`

	// HouseBlend configures the platform-funded routing alias
	HouseBlend HouseBlendConfig `json:"houseBlend" yaml:"houseBlend"`

	// Providers configures each vision backend
	Providers ProvidersConfig `json:"providers" yaml:"providers"`

	Quota QuotaConfig `json:"quota" yaml:"quota"`

	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`

	ImageStore ImageStoreConfig `json:"imageStore" yaml:"imageStore"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the usage retention worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig defines a token bucket
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// RedisConfig defines the Redis connection used by the redis quota backend
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// VaultConfig defines the credential vault configuration
type VaultConfig struct {
	// MasterKey is hex encoded and must decode to exactly 32 bytes
	MasterKey string `json:"masterKey" yaml:"masterKey"`
}

// HouseBlendConfig defines which backend serves the house-blend alias and the platform secrets
type HouseBlendConfig struct {
	// Backend is one of openai, anthropic, gemini
	Backend string            `json:"backend" yaml:"backend"`
	Secrets map[string]string `json:"secrets" yaml:"secrets"`
}

// ProviderConfig defines a single vision backend
type ProviderConfig struct {
	Model   string `json:"model" yaml:"model"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// ProvidersConfig defines all vision backends
type ProvidersConfig struct {
	OpenAI    ProviderConfig `json:"openai" yaml:"openai"`
	Anthropic ProviderConfig `json:"anthropic" yaml:"anthropic"`
	Gemini    ProviderConfig `json:"gemini" yaml:"gemini"`
}

// QuotaConfig defines the metered free tier
type QuotaConfig struct {
	// Backend is "postgres" (default) or "redis"
	Backend                 string `json:"backend" yaml:"backend"`
	AnonymousDailyLimit     int    `json:"anonymousDailyLimit" yaml:"anonymousDailyLimit"`
	AuthenticatedDailyLimit int    `json:"authenticatedDailyLimit" yaml:"authenticatedDailyLimit"`
	// Timezone is an IANA zone name that defines the day boundary
	Timezone      string `json:"timezone" yaml:"timezone"`
	RetentionDays int    `json:"retentionDays" yaml:"retentionDays"`
	// AddressHashKey keys the one-way hash of anonymous caller addresses
	AddressHashKey string `json:"addressHashKey" yaml:"addressHashKey"`
	SweepSchedule  string `json:"sweepSchedule" yaml:"sweepSchedule"`
}

// AnalysisConfig defines orchestrator settings
type AnalysisConfig struct {
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	HistoryLimit int           `json:"historyLimit" yaml:"historyLimit"`
}

// ImageStoreConfig defines where uploaded bag photos are read from
type ImageStoreConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/brewlog/images or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the retention worker
type WorkerConfig struct {
	// VerifyPushAuth requires a Google-signed OIDC token on task endpoints
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	// EnableScheduler runs the in-process cron schedule
	EnableScheduler bool `json:"enableScheduler" yaml:"enableScheduler"`
}

// New loads config.yaml from the working directory or a nearby config/
// directory, overlays the environment and fills gateway defaults.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// ApplyDefaults fills zero values of the gateway sections.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.AnalyzeRateLimit.RequestsPerSecond <= 0 {
		cfg.HTTP.AnalyzeRateLimit.RequestsPerSecond = defaultAnalyzeRatePerSecond
	}
	if cfg.HTTP.AnalyzeRateLimit.Burst <= 0 {
		cfg.HTTP.AnalyzeRateLimit.Burst = defaultAnalyzeRateBurst
	}

	if cfg.Quota.AnonymousDailyLimit == 0 {
		cfg.Quota.AnonymousDailyLimit = defaultAnonymousDailyLimit
	}
	if cfg.Quota.AuthenticatedDailyLimit == 0 {
		cfg.Quota.AuthenticatedDailyLimit = defaultAuthenticatedDailyLimit
	}
	if cfg.Quota.RetentionDays <= 0 {
		cfg.Quota.RetentionDays = defaultRetentionDays
	}
	if strings.TrimSpace(cfg.Quota.Timezone) == "" {
		cfg.Quota.Timezone = defaultQuotaTimezone
	}
	if strings.TrimSpace(cfg.Quota.SweepSchedule) == "" {
		cfg.Quota.SweepSchedule = defaultSweepSchedule
	}

	if cfg.Analysis.Timeout <= 0 {
		cfg.Analysis.Timeout = defaultAnalysisTimeout
	}
	if cfg.Analysis.HistoryLimit <= 0 {
		cfg.Analysis.HistoryLimit = defaultHistoryLimit
	}

	if cfg.HouseBlend.Secrets == nil {
		cfg.HouseBlend.Secrets = map[string]string{}
	}
}
