package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/athena/internal/engine"
	"github.com/roach88/athena/internal/render"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	System  string
	Catalog string
}

// ConvertOutput is the JSON payload of a conversion.
type ConvertOutput struct {
	System string   `json:"system"`
	Number int      `json:"number"`
	Result string   `json:"result"`
	Digits []int    `json:"digits,omitempty"`
	Glyphs []string `json:"glyphs,omitempty"`
	NoZero bool     `json:"no_zero,omitempty"`
	Trace  []string `json:"trace"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <number>",
		Short: "Convert a number into a numeral system",
		Long: `Convert a non-negative integer into a catalogued numeral system,
showing the step-by-step derivation.

Examples:
  athena convert 12 --system roman
  athena convert 1987 --system roman --format json
  athena convert 44 --system mayan --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.System, "system", "", "numeral system id (required)")
	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "directory of CUE system files (default: embedded catalog)")
	_ = cmd.MarkFlagRequired("system")

	return cmd
}

func runConvert(opts *ConvertOptions, numberArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	number, err := strconv.Atoi(numberArg)
	if err != nil {
		_ = formatter.Error("E001", fmt.Sprintf("not an integer: %q", numberArg), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("not an integer: %q", numberArg))
	}

	reg, err := loadCatalog(opts.Catalog)
	if err != nil {
		return err
	}

	eng := engine.New(reg)
	result, err := eng.Convert(number, opts.System)
	if err != nil {
		return outputEngineError(formatter, err, systemNotFoundDetails(reg.Systems()))
	}

	sys, _ := reg.Lookup(opts.System)
	out := ConvertOutput{
		System: sys.ID,
		Number: number,
		Result: render.Text(result, sys),
		Digits: result.Digits,
		NoZero: result.NoZero,
		Trace:  result.Trace,
	}
	if result.Positional() && sys.DigitRenderer != "" {
		out.Glyphs = make([]string, len(result.Digits))
		for i, d := range result.Digits {
			out.Glyphs[i] = render.Glyphs(d, sys.DigitRenderer)
		}
	}

	if opts.Format == "json" {
		return formatter.Success(out)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%s(%d) = %s\n", out.System, out.Number, out.Result)

	if len(out.Digits) > 0 {
		fmt.Fprintf(w, "\nDigits (base %d):", sys.Base)
		for _, d := range out.Digits {
			fmt.Fprintf(w, " %d", d)
		}
		fmt.Fprintln(w)
	}
	if len(out.Glyphs) > 0 {
		fmt.Fprintln(w, "Glyphs:")
		for i, g := range out.Glyphs {
			fmt.Fprintf(w, "  %d -> %s\n", out.Digits[i], g)
		}
	}

	fmt.Fprintln(w, "\nDerivation:")
	for _, line := range out.Trace {
		fmt.Fprintf(w, "  %s\n", line)
	}
	return nil
}

// outputEngineError reports a conversion failure with its engine code.
// Unknown systems also list what the catalog does contain.
func outputEngineError(formatter *OutputFormatter, err error, knownIDs []string) error {
	var engErr *engine.Error
	if !errors.As(err, &engErr) {
		_ = formatter.Error("E001", err.Error(), nil)
		return WrapExitError(ExitCommandError, "conversion failed", err)
	}

	var details interface{}
	if engine.IsNotFound(err) {
		details = map[string]any{"known_systems": knownIDs}
	}
	_ = formatter.Error(string(engErr.Code), engErr.Message, details)
	return NewExitError(ExitCommandError, engErr.Error())
}
