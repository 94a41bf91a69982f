package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Database DatabaseConfig
	Minio    MinioConfig
	CRM      CRMConfig
	Scanner  ScannerConfig
	Upload   UploadConfig
	NATS     NATSConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type MinioConfig struct {
	Endpoint      string `envconfig:"MINIO_ENDPOINT" required:"true"`
	StagingBucket string `envconfig:"MINIO_STAGING_BUCKET" required:"true"`
	AccessKey     string `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey     string `envconfig:"MINIO_SECRET_KEY" required:"true"`
	UseSSL        bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

// CRMConfig carries the CRM backend endpoints and the fixed client identity
// used by the token request.
type CRMConfig struct {
	TokenURL         string        `envconfig:"CRM_TOKEN_URL" required:"true"`
	InstanceURL      string        `envconfig:"CRM_INSTANCE_URL" required:"true"`
	ClientID         string        `envconfig:"CRM_CLIENT_ID" required:"true"`
	ClientSecret     string        `envconfig:"CRM_CLIENT_SECRET" required:"true"`
	DefaultAccountID string        `envconfig:"CRM_DEFAULT_ACCOUNT_ID" required:"true"`
	RequestTimeout   time.Duration `envconfig:"CRM_REQUEST_TIMEOUT" default:"30s"`
}

// ScannerConfig bounds the scan-verdict poll loop. The tag vocabulary and the
// terminal-state contract belong to the scanning backend; only the budget is ours.
type ScannerConfig struct {
	BaseURL        string        `envconfig:"SCANNER_BASE_URL" required:"true"`
	PollInterval   time.Duration `envconfig:"SCANNER_POLL_INTERVAL" default:"3s"`
	MaxAttempts    int           `envconfig:"SCANNER_MAX_ATTEMPTS" default:"20"`
	RequestTimeout time.Duration `envconfig:"SCANNER_REQUEST_TIMEOUT" default:"10s"`
}

type UploadConfig struct {
	MaxFileSize  int64         `envconfig:"UPLOAD_MAX_FILE_SIZE" default:"10485760"` // 10MB
	StagingTTL   time.Duration `envconfig:"UPLOAD_STAGING_TTL" default:"30m"`
	CleanupEvery time.Duration `envconfig:"UPLOAD_CLEANUP_EVERY" default:"15m"`
}

type NATSConfig struct {
	URL          string `envconfig:"NATS_URL" required:"true"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" required:"true"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" required:"true"`
	Subject      string `envconfig:"NATS_SUBJECT" required:"true"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" required:"true"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
