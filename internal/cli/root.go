// Package cli implements the ariane operator command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ariane-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ariane-backend/internal/app"
	"github.com/heartmarshall/ariane-backend/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command of the ariane CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "ariane",
		Short:   "Ariane timeline backend operator tool",
		Version: app.BuildVersion(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))

	return cmd
}

// connect loads configuration and opens the database pool. The caller
// closes the pool.
func connect(ctx context.Context, opts *RootOptions) (*config.Config, *slog.Logger, *pgxpool.Pool, error) {
	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, logger, pool, nil
}
