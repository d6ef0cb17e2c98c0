// Package main provides the CLI entrypoint for the studio platform.
// It wires subcommands (serve, migrate, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"studiohub/internal/config"
	"studiohub/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "studiohub",
		Short: "Client galleries and print orders for photography studios",
	}

	defaultPath := "config.yml"
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		defaultPath = env
	}

	// cobra parses flags only when a command runs, after the config is needed.
	// -c is read with the standard flags package and declared on cobra too so
	// it is not rejected as unknown.
	rootCmd.PersistentFlags().StringP("config", "c", defaultPath, "Config file path; missing files fall back to the environment")

	configPath := flag.String("c", defaultPath, "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
