package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// RateLimit is a sliding window policy: at most Limit calls per Window.
// A zero Limit disables the policy.
type RateLimit struct {
	Limit  int           `env:"LIMIT"  yaml:"limit"`
	Window time.Duration `env:"WINDOW" yaml:"window"`
}

func (r *RateLimit) orDefault(limit int, window time.Duration) {
	if r.Limit == 0 && r.Window == 0 {
		r.Limit, r.Window = limit, window
	}
}

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the external services the studio platform talks to, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// Pprof exposes the runtime profiles under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"studiohub" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis backs the sliding window rate limiter
	Redis struct {
		// Addr is the host:port of the redis server. Empty disables rate limiting.
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB selects the redis logical database
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// KeyPrefix namespaces the limiter keys
		KeyPrefix string `env:"REDIS_KEY_PREFIX" env-default:"studiohub:rl" yaml:"keyPrefix"`
	} `yaml:"redis"`

	// RateLimit holds the per-IP policies of the public endpoints
	RateLimit struct {
		Signup        RateLimit `env-prefix:"RATE_LIMIT_SIGNUP_" yaml:"signup"`
		Login         RateLimit `env-prefix:"RATE_LIMIT_LOGIN_" yaml:"login"`
		PasswordReset RateLimit `env-prefix:"RATE_LIMIT_PASSWORD_RESET_" yaml:"passwordReset"`
		Order         RateLimit `env-prefix:"RATE_LIMIT_ORDER_" yaml:"order"`
	} `yaml:"rateLimit"`

	// Session configures the RS256 keys used to sign and verify staff session tokens
	Session struct {
		// PrivateKey is the PEM encoded RSA key used by login and the jwt command
		PrivateKey string `env:"SESSION_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify bearer tokens
		PublicKey string `env:"SESSION_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is the lifetime of tokens issued at login
		TTL time.Duration `env:"SESSION_TTL" env-default:"12h" yaml:"ttl"`
	} `yaml:"session"`

	// Tenancy configures how studios are addressed
	Tenancy struct {
		// RootDomain hosts studios on <slug>.<RootDomain>
		RootDomain string `env:"TENANCY_ROOT_DOMAIN" env-default:"studiohub.app" yaml:"rootDomain"`
		// ResetTokenTTL is how long a password reset link stays valid
		ResetTokenTTL time.Duration `env:"TENANCY_RESET_TOKEN_TTL" env-default:"1h" yaml:"resetTokenTTL"`
		// InviteTokenTTL is how long a team invitation stays valid
		InviteTokenTTL time.Duration `env:"TENANCY_INVITE_TOKEN_TTL" env-default:"168h" yaml:"inviteTokenTTL"`
	} `yaml:"tenancy"`

	// Galleries configures gallery creation
	Galleries struct {
		// MaxCodeAttempts bounds the retries when a generated code is taken
		MaxCodeAttempts int `env:"GALLERIES_MAX_CODE_ATTEMPTS" env-default:"10" yaml:"maxCodeAttempts"`
	} `yaml:"galleries"`

	// Media configures photo processing and object storage
	Media struct {
		// PublicBaseURL prefixes storage keys in public photo URLs
		PublicBaseURL string `env:"MEDIA_PUBLIC_BASE_URL" env-default:"http://localhost:9000/studiohub" yaml:"publicBaseURL"`
		// MaxUploadBytes limits the size of a single photo upload
		MaxUploadBytes int64 `env:"MEDIA_MAX_UPLOAD_BYTES" env-default:"52428800" yaml:"maxUploadBytes"`
		// WebMaxDimension is the longest edge of the web variant
		WebMaxDimension int `env:"MEDIA_WEB_MAX_DIMENSION" env-default:"2048" yaml:"webMaxDimension"`
		// ThumbnailMaxDimension is the longest edge of the thumbnail variant
		ThumbnailMaxDimension int `env:"MEDIA_THUMBNAIL_MAX_DIMENSION" env-default:"400" yaml:"thumbnailMaxDimension"`

		S3 struct {
			Region string `env:"S3_REGION" env-default:"us-east-1" yaml:"region"`
			Bucket string `env:"S3_BUCKET" env-default:"studiohub" yaml:"bucket"`
			// Endpoint points at an S3 compatible server (minio) when set
			Endpoint        string `env:"S3_ENDPOINT" yaml:"endpoint"`
			AccessKeyID     string `env:"S3_ACCESS_KEY_ID" yaml:"accessKeyID"`
			SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
			CacheControl    string `env:"S3_CACHE_CONTROL" env-default:"public, max-age=31536000, immutable" yaml:"cacheControl"` //nolint: lll
		} `yaml:"s3"`
	} `yaml:"media"`

	// Notifications configures the kafka topic transactional e-mails are published to
	Notifications struct {
		// Brokers lists the kafka bootstrap servers. Empty logs messages instead of publishing them.
		Brokers []string `env:"NOTIFICATIONS_BROKERS" env-separator:"," yaml:"brokers"`
		// Topic receives one record per message
		Topic string `env:"NOTIFICATIONS_TOPIC" env-default:"studiohub.notifications" yaml:"topic"`
		// BatchTimeout is the longest a record waits in the writer batch
		BatchTimeout time.Duration `env:"NOTIFICATIONS_BATCH_TIMEOUT" env-default:"50ms" yaml:"batchTimeout"`
	} `yaml:"notifications"`

	// Payments configures the payment provider webhook
	Payments struct {
		// WebhookSecret signs webhook bodies with HMAC-SHA256. Empty rejects every webhook.
		WebhookSecret string `env:"PAYMENTS_WEBHOOK_SECRET" yaml:"webhookSecret"`
	} `yaml:"payments"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers bounds the concurrently running jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Variables from a .env file in the working directory are exported first, without
// overriding the ones already set. A missing yaml file falls back to the environment.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	cfg.RateLimit.Signup.orDefault(5, time.Hour)
	cfg.RateLimit.Login.orDefault(10, time.Minute)
	cfg.RateLimit.PasswordReset.orDefault(3, time.Hour)
	cfg.RateLimit.Order.orDefault(10, time.Hour)

	return &cfg, nil
}
