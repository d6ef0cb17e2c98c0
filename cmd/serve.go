package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"studiohub/internal/api"
	"studiohub/internal/api/handler/v1handler"
	"studiohub/internal/config"
	"studiohub/internal/features"
	"studiohub/internal/galleries"
	"studiohub/internal/orders"
	"studiohub/internal/tenancy"
	"studiohub/internal/worker"
	"studiohub/pkg/logger"
	"studiohub/pkg/metrics"
	"studiohub/pkg/notify"
	"studiohub/pkg/storage/postgres"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, sender notify.Sender) func(ctx context.Context) {
	tokens := tenancy.NewLinker(pgsql, tenancy.NewOptions(cfg))
	access := orders.NewLinker(pgsql)
	linker := notify.Linkers{
		notify.TemplateInvitation:         tokens,
		notify.TemplatePasswordReset:      tokens,
		notify.TemplateOrderConfirmation:  access,
		notify.TemplateOrderStatusChanged: access,
	}

	riverClient, err := worker.Start(ctx, pgsql.Pool, sender, linker, worker.Options{MaxWorkers: cfg.Worker.MaxWorkers})
	if err != nil {
		logger.Fatal(ctx, "could not start background workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping background workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop background workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			limiter, closeLimiter := getLimiter(ctx, cfg)
			defer closeLimiter()

			sender, closeSender := getSender(ctx, cfg)
			defer closeSender()

			httpMetrics, err := metrics.NewHTTP(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not register http metrics", zap.Error(err))
			}
			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			domainMetrics, err := metrics.NewDomain(meterProvider)
			if err != nil {
				logger.Fatal(ctx, "could not create domain metrics", zap.Error(err))
			}

			resolver := features.NewResolver(pgsql)
			verifier, issuer := getSessions(ctx, cfg)

			stopWorkers := setupWorkers(ctx, cfg, pgsql, sender)
			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Galleries: galleries.New(pgsql, resolver, getProcessor(ctx, cfg), domainMetrics, galleries.NewOptions(cfg)),
					Orders:    orders.New(pgsql, resolver, limiter, domainMetrics, orders.NewOptions(cfg)),
					Tenancy:   tenancy.New(pgsql, resolver, limiter, issuer, tenancy.NewOptions(cfg)),
					Verifier:  verifier,
				},
				HTTPMetrics: httpMetrics,
				Gatherer:    prometheus.DefaultGatherer,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)

			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
