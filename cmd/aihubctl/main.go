// Command aihubctl runs one-shot operator tasks against the AI Hub database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"aihub.app/api/common/id"
	"aihub.app/api/common/logger"
	"aihub.app/api/common/secret"
	"aihub.app/api/core/config"
	"aihub.app/api/core/db"
	"aihub.app/api/internal/service"
	"aihub.app/api/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "aihubctl",
		Short: "Operator tasks for the AI Hub API",
		Long: `Operator tasks for the AI Hub API.

Examples:
  aihubctl seed-tools --file tools.yaml
  aihubctl refresh-wordpress-tokens --within 5m
  aihubctl purge-sessions
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Overall command timeout")

	cmd.AddCommand(seedToolsCmd(&timeout))
	cmd.AddCommand(refreshTokensCmd(&timeout))
	cmd.AddCommand(purgeSessionsCmd(&timeout))

	return cmd
}

// env holds what every sub-command needs. close releases the database pool.
type env struct {
	services *service.Services
	close    func()
}

func bootstrap(ctx context.Context) (*env, error) {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger.Setup(cfg)

	if err := id.Init(2); err != nil {
		return nil, fmt.Errorf("initializing id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	box := secret.NewBox(cfg.Security.EncryptionKey)
	services := service.NewServices(
		store.NewStores(database.Queries(), box),
		service.NewTxRunner(database, box),
		nil, // no browser OAuth flows from the CLI
		nil, // activities are not streamed from the CLI
		service.NewWorkOSIdentityProvider(cfg.WorkOS),
		cfg,
	)

	return &env{services: services, close: database.Close}, nil
}

// withEnv runs fn with a bootstrapped env under the global timeout and SIGINT/SIGTERM.
func withEnv(timeout time.Duration, fn func(ctx context.Context, e *env) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	if err := fn(ctx, e); err != nil {
		slog.ErrorContext(ctx, "command failed", "error", err)
		return err
	}
	return nil
}
