package main

import (
	"context"
	"studiohub/internal/api/handler/v1handler"
	"studiohub/internal/config"
	"studiohub/internal/tenancy"
	"studiohub/pkg/logger"
	"studiohub/pkg/media"
	"studiohub/pkg/media/s3store"
	"studiohub/pkg/notify"
	"studiohub/pkg/ratelimit"
	"studiohub/pkg/session"
	"studiohub/pkg/storage/postgres"

	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
		ApplicationName:    "studiohub",
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getLimiter connects the redis backed rate limiter. An empty address disables
// rate limiting.
func getLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func()) {
	if cfg.Redis.Addr == "" {
		logger.Warn(ctx, "redis address is empty, rate limiting is disabled")

		return nil, func() {}
	}

	client, err := ratelimit.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return ratelimit.NewRedisLimiter(client, ratelimit.Options{KeyPrefix: cfg.Redis.KeyPrefix}), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// getSender publishes notifications to kafka, or only logs them when no broker
// is configured.
func getSender(ctx context.Context, cfg *config.Config) (notify.Sender, func()) {
	if len(cfg.Notifications.Brokers) == 0 {
		logger.Warn(ctx, "no notification brokers configured, messages are only logged")

		return notify.LogSender{}, func() {}
	}

	sender := notify.NewKafkaSender(notify.Options{
		Brokers:      cfg.Notifications.Brokers,
		Topic:        cfg.Notifications.Topic,
		BatchTimeout: cfg.Notifications.BatchTimeout,
	})

	return sender, func() {
		logger.Info(ctx, "closing kafka writer...")
		if err := sender.Close(); err != nil {
			logger.Warn(ctx, "could not close kafka writer", zap.Error(err))
		}
	}
}

func getProcessor(ctx context.Context, cfg *config.Config) media.Processor {
	store, err := s3store.New(s3store.Options{
		Region:          cfg.Media.S3.Region,
		Bucket:          cfg.Media.S3.Bucket,
		Endpoint:        cfg.Media.S3.Endpoint,
		AccessKeyID:     cfg.Media.S3.AccessKeyID,
		SecretAccessKey: cfg.Media.S3.SecretAccessKey,
		CacheControl:    cfg.Media.S3.CacheControl,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create object storage", zap.Error(err))
	}

	return media.NewProcessor(store, media.Options{
		WebMaxDimension:       cfg.Media.WebMaxDimension,
		ThumbnailMaxDimension: cfg.Media.ThumbnailMaxDimension,
	})
}

// getSessions loads the token keys. Without a public key every authenticated
// endpoint answers 401; without a private key login is disabled.
func getSessions(ctx context.Context, cfg *config.Config) (v1handler.TokenVerifier, tenancy.TokenIssuer) {
	var (
		verifier v1handler.TokenVerifier
		issuer   tenancy.TokenIssuer
	)

	if cfg.Session.PublicKey != "" {
		v, err := session.NewVerifier(cfg.Session.PublicKey)
		if err != nil {
			logger.Fatal(ctx, "could not load session public key", zap.Error(err))
		}
		verifier = v
	} else {
		logger.Warn(ctx, "session public key is empty, authenticated endpoints are disabled")
	}

	if cfg.Session.PrivateKey != "" {
		i, err := session.NewIssuer(cfg.Session.PrivateKey)
		if err != nil {
			logger.Fatal(ctx, "could not load session private key", zap.Error(err))
		}
		issuer = i
	} else {
		logger.Warn(ctx, "session private key is empty, login is disabled")
	}

	return verifier, issuer
}
