package catalog

import (
	"fmt"
	"sort"

	"github.com/roach88/athena/internal/numeral"
)

// Registry is an immutable, ordered collection of compiled systems.
// Listing order is (Order, ID) ascending, so catalogs control their own
// presentation order and unordered systems fall back to alphabetical.
type Registry struct {
	systems []*numeral.System
	byID    map[string]*numeral.System
	hash    string
}

// NewRegistry builds a registry from compiled systems. IDs must be
// unique; the input slice is not retained.
func NewRegistry(systems []*numeral.System) (*Registry, error) {
	r := &Registry{
		systems: make([]*numeral.System, 0, len(systems)),
		byID:    make(map[string]*numeral.System, len(systems)),
	}

	for _, sys := range systems {
		if sys.ID == "" {
			return nil, ValidationError{
				Field:   "id",
				Message: "system id is required",
				Code:    ErrSystemIDEmpty,
			}
		}
		if _, dup := r.byID[sys.ID]; dup {
			return nil, ValidationError{
				System:  sys.ID,
				Field:   "id",
				Message: fmt.Sprintf("duplicate system id %q", sys.ID),
				Code:    ErrDuplicateSystemID,
			}
		}
		r.byID[sys.ID] = sys
		r.systems = append(r.systems, sys)
	}

	sort.SliceStable(r.systems, func(i, j int) bool {
		if r.systems[i].Order != r.systems[j].Order {
			return r.systems[i].Order < r.systems[j].Order
		}
		return r.systems[i].ID < r.systems[j].ID
	})

	hash, err := catalogHash(r.systems)
	if err != nil {
		return nil, fmt.Errorf("catalog: hashing systems: %w", err)
	}
	r.hash = hash

	return r, nil
}

// Lookup returns the system with the given id.
func (r *Registry) Lookup(id string) (*numeral.System, bool) {
	sys, ok := r.byID[id]
	return sys, ok
}

// Systems returns the systems in listing order. The returned slice is a
// copy; the systems themselves are shared and must not be mutated.
func (r *Registry) Systems() []*numeral.System {
	out := make([]*numeral.System, len(r.systems))
	copy(out, r.systems)
	return out
}

// Len returns the number of systems in the registry.
func (r *Registry) Len() int {
	return len(r.systems)
}

// Hash returns the content hash of the whole catalog. Two registries
// with semantically identical systems always share a hash, regardless
// of file layout or load order.
func (r *Registry) Hash() string {
	return r.hash
}

func catalogHash(systems []*numeral.System) (string, error) {
	list := make([]any, 0, len(systems))
	for _, sys := range systems {
		list = append(list, systemCanonicalMap(sys))
	}
	return numeral.ContentID(numeral.DomainCatalog, map[string]any{"systems": list})
}

// systemCanonicalMap projects a system into the canonical-JSON value
// shapes. Empty optional fields are omitted rather than encoded as
// empty strings so adding a field later never silently reuses old
// hashes.
func systemCanonicalMap(sys *numeral.System) map[string]any {
	m := map[string]any{
		"id":    sys.ID,
		"name":  sys.Name,
		"base":  sys.Base,
		"logic": string(sys.Logic),
	}
	if sys.Region != "" {
		m["region"] = sys.Region
	}
	if sys.Description != "" {
		m["description"] = sys.Description
	}
	if sys.Order != 0 {
		m["order"] = sys.Order
	}
	if sys.Layout != "" {
		m["layout"] = sys.Layout
	}
	if sys.DigitRenderer != "" {
		m["digit_renderer"] = sys.DigitRenderer
	}
	if sys.ZeroSymbol != "" {
		m["zero_symbol"] = sys.ZeroSymbol
	}
	if len(sys.SymbolTable) > 0 {
		rows := make([]any, 0, len(sys.SymbolTable))
		for _, entry := range sys.SortedSymbols() {
			rows = append(rows, map[string]any{
				"value": entry.Value,
				"glyph": entry.Glyph,
			})
		}
		m["symbols"] = rows
	}
	return m
}
