package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/dinocatalog-backend/internal/app"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "dinocatalog",
	Short:         "Read-only dinosaur reference catalog API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Prepare the store and serve the HTTP API",
	RunE:  runServe,
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the schema and load the seed catalog if the store is empty",
	RunE:  runSetup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd, setupCmd)
}

func bootstrap(ctx context.Context) (*app.App, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.Setup(ctx)
	if err != nil {
		return err
	}
	a.Log.Info("store ready", "backend", a.Cfg.Store.Backend, "seeded", n)
	return a.Run(ctx)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.Setup(ctx)
	if err != nil {
		return err
	}
	total, err := a.Catalog.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "store already seeded (%d records)\n", total)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d records\n", n)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
