package catalog

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed systems/*.cue
var builtinFS embed.FS

// Builtin compiles the embedded catalog: Roman, Mayan, Babylonian and
// Binary. The CLI and the server fall back to it whenever no catalog
// directory is configured.
func Builtin() (*Registry, error) {
	sub, err := fs.Sub(builtinFS, "systems")
	if err != nil {
		return nil, err
	}
	reg, errs := LoadFS(sub, LoadModeFailFast)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}
