package cli

import (
	"github.com/roach88/athena/internal/catalog"
)

// loadCatalog resolves the --catalog flag into a registry: the embedded
// catalog when the flag is empty, otherwise a user-supplied directory.
// Load failures surface as command errors (exit code 2); the validate
// command handles its own loading so it can report every error.
func loadCatalog(dir string) (*catalog.Registry, error) {
	if dir == "" {
		reg, err := catalog.Builtin()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load builtin catalog", err)
		}
		return reg, nil
	}

	reg, errs := catalog.LoadDir(dir, catalog.LoadModeFailFast)
	if len(errs) > 0 {
		return nil, WrapExitError(ExitCommandError, "load catalog", errs[0])
	}
	return reg, nil
}
