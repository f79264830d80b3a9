package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func refreshTokensCmd(timeout *time.Duration) *cobra.Command {
	var within time.Duration

	cmd := &cobra.Command{
		Use:   "refresh-wordpress-tokens",
		Short: "Refresh WordPress.com tokens that expire soon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(*timeout, func(ctx context.Context, e *env) error {
				refreshed, failed, err := e.services.WordPress().RefreshExpiring(ctx, within)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d, failed %d\n", refreshed, failed)
				if failed > 0 {
					return fmt.Errorf("%d integrations could not be refreshed", failed)
				}
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&within, "within", 5*time.Minute, "Refresh tokens expiring within this window")

	return cmd
}

func purgeSessionsCmd(timeout *time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(*timeout, func(ctx context.Context, e *env) error {
				n, err := e.services.Auth().PurgeExpiredSessions(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d sessions\n", n)
				return nil
			})
		},
	}
}
