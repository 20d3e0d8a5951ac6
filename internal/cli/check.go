package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ariane-backend/internal/service/guestimport"
)

// ErrCheckFailed is returned by check --strict when the document would not
// import cleanly.
var ErrCheckFailed = errors.New("guest timeline has skipped records or inconsistencies")

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <file|->",
		Short: "Check a guest timeline document without importing it",
		Long: `Plan the import of a guest timeline and run the consistency analysis
on the result. Nothing is written. Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := readTimeline(cmd, args[0])
			if err != nil {
				return err
			}

			report := guestimport.Check(tl)
			if err := writeCheckReport(cmd.OutOrStdout(), rootOpts.Format, report); err != nil {
				return err
			}

			if strict && (len(report.Skipped) > 0 || len(report.Inconsistent) > 0) {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when records would be skipped or events are inconsistent")

	return cmd
}

func readTimeline(cmd *cobra.Command, path string) (*guestimport.Timeline, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return guestimport.Decode(r)
}

func writeCheckReport(w io.Writer, format string, report guestimport.CheckReport) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "events: %d\nconnections: %d\n", report.Events, report.Connections)
	if len(report.Skipped) > 0 {
		fmt.Fprintf(w, "skipped: %d\n", len(report.Skipped))
		for _, s := range report.Skipped {
			fmt.Fprintf(w, "  %s %s", s.Kind, s.LocalID)
			if s.TargetID != "" {
				fmt.Fprintf(w, " -> %s", s.TargetID)
			}
			fmt.Fprintf(w, ": %s", s.Reason)
			if s.Detail != "" {
				fmt.Fprintf(w, " (%s)", s.Detail)
			}
			fmt.Fprintln(w)
		}
	}
	if len(report.Findings) > 0 {
		fmt.Fprintf(w, "inconsistent events: %d\n", len(report.Inconsistent))
		for _, f := range report.Findings {
			fmt.Fprintf(w, "  %s [%s]: %s\n", f.LocalID, f.Cause, f.Message)
		}
	}
	return nil
}
