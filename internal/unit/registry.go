package unit

import (
	"golang.org/x/text/cases"

	"unitconv/internal/match"
)

// maxSuggestions bounds the "did you mean" list attached to lookup errors.
const maxSuggestions = 3

// Registry maps unit names and aliases to IDs.
type Registry struct {
	units []Unit
	index map[string]ID
	fold  *cases.Caser
}

// Option configures a Registry.
type Option func(*Registry)

// WithCaseFolding makes name matching case-insensitive.
func WithCaseFolding() Option {
	return func(r *Registry) {
		c := cases.Fold()
		r.fold = &c
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{index: make(map[string]ID)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a unit and returns its ID. Nothing is registered on error.
// An alias equal to the unit's own name is ignored.
func (r *Registry) Register(name string, aliases []string, intermediate bool) (ID, error) {
	if name == "" {
		return Invalid, ErrEmptyName
	}

	id := ID(len(r.units))
	u := Unit{ID: id, Name: name, Intermediate: intermediate}
	keys := map[string]struct{}{r.key(name): {}}

	if err := r.checkFree(name); err != nil {
		return Invalid, err
	}

	for _, alias := range aliases {
		if alias == "" {
			return Invalid, ErrEmptyAlias
		}

		k := r.key(alias)
		if _, ok := keys[k]; ok {
			// Repeats within the same unit are harmless.
			continue
		}

		if err := r.checkFree(alias); err != nil {
			return Invalid, err
		}

		keys[k] = struct{}{}
		u.Aliases = append(u.Aliases, alias)
	}

	for k := range keys {
		r.index[k] = id
	}

	r.units = append(r.units, u)

	return id, nil
}

// Resolve looks up a unit by name or alias.
func (r *Registry) Resolve(name string) (ID, error) {
	if id, ok := r.index[r.key(name)]; ok {
		return id, nil
	}

	return Invalid, &UnknownUnitError{Name: name, Suggestions: r.suggest(name)}
}

// Contains reports whether name resolves to a unit.
func (r *Registry) Contains(name string) bool {
	_, ok := r.index[r.key(name)]
	return ok
}

// Unit returns the unit with the given ID. It panics if id is out of range.
func (r *Registry) Unit(id ID) Unit {
	return r.units[id]
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}

// Units returns all units in registration order.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	copy(out, r.units)

	return out
}

// Names returns every registered name and alias.
func (r *Registry) Names() []string {
	var names []string
	for _, u := range r.units {
		names = append(names, u.Names()...)
	}

	return names
}

func (r *Registry) checkFree(name string) error {
	if owner, ok := r.index[r.key(name)]; ok {
		return &DuplicateUnitError{Name: name, Existing: r.units[owner].Name}
	}

	return nil
}

func (r *Registry) key(s string) string {
	if r.fold == nil {
		return s
	}

	return r.fold.String(s)
}

func (r *Registry) suggest(name string) []string {
	return match.Suggest(name, r.Names(), maxSuggestions)
}
