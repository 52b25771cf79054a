package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/athena/internal/catalog"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                      `json:"valid"`
	Errors []catalog.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-dir>",
		Short: "Validate a catalog of CUE system files",
		Long: `Validate CUE numeral-system files without starting anything.

Compiles every .cue file in the directory, checks the schema rules,
and probes additive symbol tables for unrepresentable values. All
errors are collected so a catalog author sees the full report in one
run.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, catalogDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	reg, loadErrs := catalog.LoadDir(catalogDir, catalog.LoadModeCollectAll)

	if len(loadErrs) > 0 {
		// A LoadError means the catalog never got as far as schema
		// checks (missing directory, no files, CUE would not build).
		// Those are command errors, not validation verdicts.
		var loadErr *catalog.LoadError
		if errors.As(loadErrs[0], &loadErr) {
			return outputValidateError(formatter, loadErr.Code, loadErr.Message)
		}
		return outputValidationErrors(formatter, asValidationErrors(loadErrs))
	}

	formatter.VerboseLog("Compiled %d system(s) from %s, hash %s", reg.Len(), catalogDir, reg.Hash())

	return outputValidateSuccess(formatter)
}

// asValidationErrors normalizes the mixed error list from the catalog
// loader into displayable validation errors.
func asValidationErrors(errs []error) []catalog.ValidationError {
	out := make([]catalog.ValidationError, 0, len(errs))
	for _, err := range errs {
		var verr catalog.ValidationError
		if errors.As(err, &verr) {
			out = append(out, verr)
			continue
		}

		var cerr *catalog.CompileError
		if errors.As(err, &cerr) {
			msg := cerr.Message
			if cerr.Pos.IsValid() {
				msg = fmt.Sprintf("%s (%s:%d)", cerr.Message, cerr.Pos.Filename(), cerr.Pos.Line())
			}
			out = append(out, catalog.ValidationError{
				Field:   cerr.Field,
				Message: msg,
				Code:    compileErrorCode(cerr.Field),
			})
			continue
		}

		out = append(out, catalog.ValidationError{
			Field:   "catalog",
			Message: err.Error(),
			Code:    catalog.ErrCodeGeneric,
		})
	}
	return out
}

// compileErrorCode maps a compile error field to a validation error code.
func compileErrorCode(field string) string {
	switch field {
	case "name":
		return catalog.ErrNameEmpty
	case "logic":
		return catalog.ErrLogicInvalid
	case "base":
		return catalog.ErrBaseInvalid
	case "symbols":
		return catalog.ErrSymbolValue
	default:
		return catalog.ErrCodeGeneric
	}
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter) error {
	if formatter.Format == "json" {
		result := ValidationResult{Valid: true}
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, "✓ All systems valid")
	return nil
}

// outputValidateError outputs a single load-stage error.
func outputValidateError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	// Load errors are command-level errors (exit code 2)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []catalog.ValidationError) error {
	if formatter.Format == "json" {
		result := ValidationResult{
			Valid:  false,
			Errors: errs,
		}

		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, verr := range errs {
		fmt.Fprintf(formatter.Writer, "  %s\n", verr.Error())
	}
	fmt.Fprintln(formatter.Writer)

	// Validation failures = exit code 1
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
