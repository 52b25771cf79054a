package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/athena/internal/puzzle"
)

// PuzzleOptions holds flags for the puzzle command.
type PuzzleOptions struct {
	*RootOptions
	System  string
	Catalog string
	Seed    int64
	Reveal  bool
}

// PuzzleOutput is the JSON payload of a generated puzzle. Answer fields
// are included only with --reveal.
type PuzzleOutput struct {
	ID            string `json:"id"`
	System        string `json:"system"`
	Kind          string `json:"kind"`
	Question      string `json:"question"`
	Hint          string `json:"hint"`
	Target        int    `json:"target,omitempty"`
	AnswerDisplay string `json:"answer_display,omitempty"`
}

// NewPuzzleCommand creates the puzzle command.
func NewPuzzleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PuzzleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Generate a practice puzzle",
		Long: `Generate a practice puzzle for a numeral system.

The generator is seedable: the same --seed against the same catalog
always produces the same puzzle. Without --seed a random one is drawn.

Examples:
  athena puzzle --system roman
  athena puzzle --system mayan --seed 42 --reveal
  athena puzzle --system binary --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPuzzle(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.System, "system", "", "numeral system id (required)")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "directory of CUE system files (default: embedded catalog)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "generator seed (0 = random)")
	cmd.Flags().BoolVar(&opts.Reveal, "reveal", false, "include the answer in the output")
	_ = cmd.MarkFlagRequired("system")

	return cmd
}

func runPuzzle(opts *PuzzleOptions, cmd *cobra.Command) error {
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

	seed := opts.Seed
	if seed == 0 {
		seed, err = puzzle.NewSeed()
		if err != nil {
			return WrapExitError(ExitCommandError, "draw random seed", err)
		}
	}
	formatter.VerboseLog("Generating with seed %d", seed)

	p, err := puzzle.NewGenerator(reg, seed).Generate(opts.System)
	if err != nil {
		return outputEngineError(formatter, err, systemNotFoundDetails(reg.Systems()))
	}

	out := PuzzleOutput{
		ID:       p.ID,
		System:   p.SystemID,
		Kind:     string(p.Kind),
		Question: p.Question,
		Hint:     p.Hint,
	}
	if opts.Reveal {
		out.Target = p.Target
		out.AnswerDisplay = p.AnswerDisplay
	}

	if opts.Format == "json" {
		return formatter.Success(out)
	}

	w := formatter.Writer
	fmt.Fprintln(w, p.Question)
	fmt.Fprintf(w, "Hint: %s\n", p.Hint)
	if opts.Reveal {
		fmt.Fprintf(w, "Answer: %d (written as %s)\n", p.Target, p.AnswerDisplay)
	}
	formatter.VerboseLog("Puzzle id %s", p.ID)
	return nil
}
