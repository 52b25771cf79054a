package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"

	"github.com/roach88/athena/internal/numeral"
)

// LoadMode controls how errors are handled during catalog loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Error code constants for load failures.
const (
	ErrCodeGeneric     = "E001" // generic/unknown error
	ErrCodeScanError   = "E002" // directory scan error
	ErrCodeNoFiles     = "E003" // no CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
)

// LoadError represents an error that occurred during catalog loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadDir loads, compiles and validates every CUE file in a directory
// and builds a registry from the result. With LoadModeFailFast it
// returns on the first error; with LoadModeCollectAll it gathers every
// compile and validation error so a catalog author sees the full
// damage report in one run. The registry is nil whenever errors are
// returned.
//
// Each file is compiled independently, the same path the embedded
// catalog takes, so system files need no package clause and one broken
// file cannot mask the rest of the report.
func LoadDir(dir string, mode LoadMode) (*Registry, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	return LoadFS(os.DirFS(dir), mode)
}

// LoadFS compiles every .cue file in an fs.FS. Both the embedded
// built-in catalog and LoadDir come through here.
func LoadFS(fsys fs.FS, mode LoadMode) (*Registry, []error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".cue" {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning fs: %v", err)}}
	}
	if len(names) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: "no CUE files found"}}
	}
	sort.Strings(names)

	ctx := cuecontext.New()
	var systems []*numeral.System
	var errs []error

	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("reading %s: %v", name, err)})
			if mode == LoadModeFailFast {
				return nil, errs
			}
			continue
		}

		value := ctx.CompileBytes(data, cue.Filename(name))
		if err := value.Err(); err != nil {
			errs = append(errs, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("compiling %s: %v", name, err)})
			if mode == LoadModeFailFast {
				return nil, errs
			}
			continue
		}

		fileSystems, fileErrs := compileSystems(value, mode)
		errs = append(errs, fileErrs...)
		if len(fileErrs) > 0 && mode == LoadModeFailFast {
			return nil, errs
		}
		systems = append(systems, fileSystems...)
	}

	return buildRegistry(systems, errs, mode)
}

// LoadSource compiles inline CUE source into a registry. Conformance
// scenarios embed small single-purpose catalogs this way.
func LoadSource(src string, mode LoadMode) (*Registry, []error) {
	ctx := cuecontext.New()
	value := ctx.CompileString(src, cue.Filename("inline.cue"))
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("compiling inline catalog: %v", err)}}
	}

	systems, errs := compileSystems(value, mode)
	if len(errs) > 0 && mode == LoadModeFailFast {
		return nil, errs
	}
	return buildRegistry(systems, errs, mode)
}

// compileSystems extracts and compiles every system declared under the
// top-level "system" struct of a CUE value.
func compileSystems(value cue.Value, mode LoadMode) ([]*numeral.System, []error) {
	var systems []*numeral.System
	var errs []error

	root := value.LookupPath(cue.ParsePath("system"))
	if !root.Exists() {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: "no systems found: missing top-level \"system\" struct"}}
	}

	iter, iterErr := root.Fields()
	if iterErr != nil {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating systems: %v", iterErr)}}
	}

	for iter.Next() {
		sys, compileErr := CompileSystem(iter.Value())
		if compileErr != nil {
			errs = append(errs, compileErr)
			if mode == LoadModeFailFast {
				return systems, errs
			}
			continue
		}
		systems = append(systems, sys)
	}

	if len(systems) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no systems found in catalog"})
	}

	return systems, errs
}

// buildRegistry validates the compiled systems, appends any semantic
// errors, and assembles the registry only when the catalog is clean.
func buildRegistry(systems []*numeral.System, errs []error, mode LoadMode) (*Registry, []error) {
	for _, sys := range systems {
		for _, verr := range Validate(sys) {
			errs = append(errs, verr)
			if mode == LoadModeFailFast {
				return nil, errs
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	reg, err := NewRegistry(systems)
	if err != nil {
		return nil, []error{err}
	}
	return reg, nil
}
