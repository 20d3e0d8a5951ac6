package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ariane-backend/internal/app"
	"github.com/heartmarshall/ariane-backend/internal/observability"
	"github.com/heartmarshall/ariane-backend/internal/service/guestimport"
	"github.com/heartmarshall/ariane-backend/pkg/ctxutil"
)

type importOptions struct {
	userID    string
	projectID string
	name      string
}

func (o importOptions) parse() (uuid.UUID, guestimport.Input, error) {
	userID, err := uuid.Parse(o.userID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, guestimport.Input{}, fmt.Errorf("--user must be a user UUID")
	}

	var input guestimport.Input
	switch {
	case o.projectID != "" && o.name != "":
		return uuid.Nil, input, fmt.Errorf("give either --project or --name, not both")
	case o.projectID != "":
		input.ProjectID, err = uuid.Parse(o.projectID)
		if err != nil {
			return uuid.Nil, input, fmt.Errorf("--project must be a project UUID")
		}
	case o.name != "":
		input.ProjectName = o.name
	default:
		return uuid.Nil, input, fmt.Errorf("one of --project or --name is required")
	}
	return userID, input, nil
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import a guest timeline into a user's project",
		Long: `Replay a guest timeline document into an existing project (--project)
or a new one (--name) owned by --user. The import runs in one transaction;
records that cannot be imported are skipped and listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, input, err := opts.parse()
			if err != nil {
				return err
			}

			input.Timeline, err = readTimeline(cmd, args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg, logger, pool, err := connect(ctx, rootOpts)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := app.NewServices(pool, cfg.Timeline, logger, observability.NewMetrics())

			result, err := svc.Import.Import(ctxutil.WithUserID(ctx, userID), input)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			logger.Info("guest timeline imported",
				slog.String("user_id", userID.String()),
				slog.String("project_id", result.ProjectID.String()),
				slog.Int("events", result.EventsCreated),
				slog.Int("skipped", len(result.Skipped)),
			)
			return writeImportResult(cmd.OutOrStdout(), rootOpts.Format, result)
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "owner user id (required)")
	cmd.Flags().StringVar(&opts.projectID, "project", "", "existing project id")
	cmd.Flags().StringVar(&opts.name, "name", "", "name of a new project")
	cmd.MarkFlagsMutuallyExclusive("project", "name")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func writeImportResult(w io.Writer, format string, result *guestimport.Result) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(w, "project: %s", result.ProjectID)
	if result.ProjectCreated {
		fmt.Fprint(w, " (created)")
	}
	fmt.Fprintf(w, "\nevents: %d\nconnections: %d\nskipped: %d\n",
		result.EventsCreated, result.ConnectionsCreated, len(result.Skipped))
	for _, s := range result.Skipped {
		fmt.Fprintf(w, "  %s %s: %s\n", s.Kind, s.LocalID, s.Reason)
	}
	return nil
}
