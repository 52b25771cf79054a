package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/athena/internal/numeral"
)

// SystemSummary is one row of the systems listing.
type SystemSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Base   int    `json:"base"`
	Logic  string `json:"logic"`
}

// SystemsOptions holds flags for the systems command.
type SystemsOptions struct {
	*RootOptions
	Catalog string
}

// NewSystemsCommand creates the systems command.
func NewSystemsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SystemsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "systems",
		Short: "List the catalogued numeral systems",
		Long: `List every numeral system in the catalog, in catalog order.

Uses the embedded catalog unless --catalog points at a directory of
CUE system files.

Examples:
  athena systems
  athena systems --catalog ./my-systems --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSystems(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "directory of CUE system files (default: embedded catalog)")

	return cmd
}

func runSystems(opts *SystemsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := loadCatalog(opts.Catalog)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Catalog loaded: %d system(s), hash %s", reg.Len(), reg.Hash())

	summaries := make([]SystemSummary, 0, reg.Len())
	for _, sys := range reg.Systems() {
		summaries = append(summaries, SystemSummary{
			ID:     sys.ID,
			Name:   sys.Name,
			Region: sys.Region,
			Base:   sys.Base,
			Logic:  string(sys.Logic),
		})
	}

	if opts.Format == "json" {
		return formatter.Success(summaries)
	}

	for _, sys := range reg.Systems() {
		fmt.Fprintf(formatter.Writer, "%-12s %-22s base %-3d %s\n", sys.ID, sys.Name, sys.Base, sys.Logic)
		if opts.Verbose {
			if sys.Region != "" {
				fmt.Fprintf(formatter.Writer, "             %s\n", sys.Region)
			}
			if sys.Description != "" {
				fmt.Fprintf(formatter.Writer, "             %s\n", sys.Description)
			}
		}
	}
	return nil
}

// systemNotFoundDetails lists the known ids for error messages.
func systemNotFoundDetails(systems []*numeral.System) []string {
	ids := make([]string, 0, len(systems))
	for _, sys := range systems {
		ids = append(ids, sys.ID)
	}
	return ids
}
