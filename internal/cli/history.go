package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/athena/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Verify   bool
}

// HistoryResult holds the practice log report.
type HistoryResult struct {
	Attempts []store.AttemptRecord `json:"attempts"`
	Stats    []store.SystemStats   `json:"stats"`
	Verify   *store.VerifyResult   `json:"verify,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the practice log",
		Long: `Show recent puzzle attempts and per-system accuracy.

With --verify, every stored puzzle row is rehashed and compared
against its content id, reporting rows edited outside the
application.

Exit codes:
  0 - Report printed (and, with --verify, all rows intact)
  1 - Integrity check failed (mismatched rows found)
  2 - Command error (database not readable, etc.)

Examples:
  athena history --db ./athena.db
  athena history --db ./athena.db --limit 5 --verify
  athena history --db ./athena.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite practice log (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum attempts to show")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "rehash stored puzzles and report tampered rows")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	ctx := context.Background()

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open practice log", err)
	}
	defer st.Close()

	attempts, err := st.ReadRecentAttempts(ctx, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "read attempts", err)
	}
	stats, err := st.ReadSystemStats(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "read stats", err)
	}

	result := HistoryResult{Attempts: attempts, Stats: stats}
	if result.Attempts == nil {
		result.Attempts = []store.AttemptRecord{}
	}
	if result.Stats == nil {
		result.Stats = []store.SystemStats{}
	}

	if opts.Verify {
		vr, err := st.VerifyPuzzles(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "verify puzzles", err)
		}
		result.Verify = &vr
	}

	if opts.Format == "json" {
		return outputHistoryJSON(cmd, result)
	}

	return outputHistoryText(cmd, result, opts.Verbose)
}

// outputHistoryJSON outputs the history report as JSON.
func outputHistoryJSON(cmd *cobra.Command, result HistoryResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}

	if result.Verify != nil && !result.Verify.Ok() {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    "E_INTEGRITY",
			Message: "puzzle integrity check failed",
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Verify != nil && !result.Verify.Ok() {
		// Integrity failure = exit code 1
		return NewExitError(ExitFailure, "puzzle integrity check failed")
	}
	return nil
}

// outputHistoryText outputs the history report as text.
func outputHistoryText(cmd *cobra.Command, result HistoryResult, verbose bool) error {
	w := cmd.OutOrStdout()

	if len(result.Attempts) == 0 {
		fmt.Fprintln(w, "No attempts recorded.")
	} else {
		fmt.Fprintf(w, "Recent attempts (%d):\n", len(result.Attempts))
		fmt.Fprintln(w)

		for _, a := range result.Attempts {
			status := "✓"
			if !a.Correct {
				status = "✗"
			}

			fmt.Fprintf(w, "%s [%s] %s\n", status, a.SystemID, a.Question)
			fmt.Fprintf(w, "  Answer: %s\n", a.Answer)
			if verbose {
				fmt.Fprintf(w, "  Puzzle: %s\n", a.PuzzleID)
				fmt.Fprintf(w, "  At: %s\n", a.CreatedAt.Format(time.RFC3339))
			}
			fmt.Fprintln(w)
		}
	}

	if len(result.Stats) > 0 {
		fmt.Fprintln(w, "Per-system accuracy:")
		for _, s := range result.Stats {
			fmt.Fprintf(w, "  %-12s %d/%d correct\n", s.SystemID, s.Correct, s.Attempted)
		}
		fmt.Fprintln(w)
	}

	if result.Verify == nil {
		return nil
	}

	if result.Verify.Ok() {
		fmt.Fprintf(w, "✓ Puzzle log verified: %d row(s) intact\n", result.Verify.Checked)
		return nil
	}

	fmt.Fprintln(w, "✗ Puzzle integrity check failed")
	for _, id := range result.Verify.Mismatched {
		fmt.Fprintf(w, "  %s\n", id)
	}
	// Integrity failure = exit code 1
	return NewExitError(ExitFailure, "puzzle integrity check failed")
}
