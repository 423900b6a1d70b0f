package config

import (
	"errors"
	"fmt"
	"strings"

	"unitconv/internal/diagnostic"
	"unitconv/internal/graph"
	"unitconv/internal/unit"
)

type pair struct{ from, to unit.ID }

// Validate checks a configuration structurally. It never stops at the first
// problem; every finding is reported.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config is nil", "")
		return res
	}

	if len(f.Units) == 0 {
		res.AddWarning("no_units", "config declares no units", "units")
	}

	reg := NewRegistry(f)
	ok := validateUnits(res, reg, f.Units)

	seen := map[pair]string{}
	used := make([]bool, reg.Len())
	g := graph.New(reg.Len())

	for _, c := range f.Conversions() {
		p, valid := validateConversion(res, reg, c)
		if !valid {
			continue
		}

		used[p.from], used[p.to] = true, true

		if prev, dup := seen[p]; dup {
			res.AddError("duplicate_conversion",
				fmt.Sprintf("conversion %q -> %q is already defined at %s", c.From, c.To, prev),
				c.Location).Cause = graph.ErrDuplicateEdge

			continue
		}

		seen[p] = c.Location
		_ = g.AddEdge(p.from, p.to, TransformOf(c))
	}

	for i, u := range f.Units {
		if id, registered := ok[i]; registered && !used[id] {
			res.AddWarning("isolated_unit", fmt.Sprintf("unit %q has no conversions", u.Name), indexed("units", i))
		}
	}

	reportGroups(res, reg, g)

	return res
}

// reportGroups notes when the connected units split into several groups
// with no conversion between them. Isolated units are already warned about.
func reportGroups(res *diagnostic.Diagnostics, reg *unit.Registry, g *graph.Graph) {
	var groups []string

	for _, ids := range graph.Components(g) {
		if len(ids) < 2 {
			continue
		}

		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = reg.Unit(id).Name
		}

		groups = append(groups, "["+strings.Join(names, ", ")+"]")
	}

	if len(groups) > 1 {
		res.AddInfo("disconnected_units",
			fmt.Sprintf("units form %d groups with no conversion between them: %s", len(groups), strings.Join(groups, " ")),
			"")
	}
}

// Check validates f and returns an error matching ErrInvalidConfiguration
// when there are error diagnostics. The typed causes (for example
// unit.ErrDuplicateUnit) are reachable with errors.Is.
func Check(f *File) error {
	if err := Validate(f).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return nil
}

// NewRegistry returns an empty registry honoring the file's case setting.
func NewRegistry(f *File) *unit.Registry {
	if f != nil && f.CaseInsensitive {
		return unit.NewRegistry(unit.WithCaseFolding())
	}

	return unit.NewRegistry()
}

// validateUnits registers units into reg and returns the IDs of the ones
// that registered, keyed by their index in defs.
func validateUnits(res *diagnostic.Diagnostics, reg *unit.Registry, defs []UnitDef) map[int]unit.ID {
	ids := make(map[int]unit.ID, len(defs))

	for i, def := range defs {
		loc := indexed("units", i)

		id, err := reg.Register(def.Name, def.Aliases, def.Intermediate)
		if err == nil {
			ids[i] = id
			continue
		}

		var dup *unit.DuplicateUnitError

		switch {
		case errors.Is(err, unit.ErrEmptyName):
			res.AddError("missing_name", "unit name is required", loc).Cause = err
		case errors.Is(err, unit.ErrEmptyAlias):
			res.AddError("empty_alias", fmt.Sprintf("unit %q has an empty alias", def.Name), loc).Cause = err
		case errors.As(err, &dup):
			res.AddError("duplicate_name", dup.Error(), loc).Cause = err
		default:
			res.AddError("invalid_unit", err.Error(), loc).Cause = err
		}
	}

	return ids
}

func validateConversion(res *diagnostic.Diagnostics, reg *unit.Registry, c Conversion) (pair, bool) {
	from, okFrom := resolveRef(res, reg, c.From, c.Location+".from", "missing_from")
	to, okTo := resolveRef(res, reg, c.To, c.Location+".to", "missing_to")
	valid := okFrom && okTo

	if c.Value == nil {
		res.AddError("missing_"+factorField(c.Kind), fmt.Sprintf("%s is required", factorField(c.Kind)), c.Location).
			Cause = ErrInvalidConfiguration
		valid = false
	} else if err := TransformOf(c).Validate(); err != nil {
		res.AddError("invalid_"+factorField(c.Kind), err.Error(), c.Location).Cause = err
		valid = false
	}

	if okFrom && okTo && from == to {
		res.AddError("self_conversion",
			fmt.Sprintf("conversion from %q to %q converts a unit to itself", c.From, c.To),
			c.Location).Cause = graph.ErrSelfLoop
		valid = false
	}

	return pair{from, to}, valid
}

func resolveRef(res *diagnostic.Diagnostics, reg *unit.Registry, name, loc, missingCode string) (unit.ID, bool) {
	if name == "" {
		res.AddError(missingCode, "unit reference is required", loc).Cause = ErrInvalidConfiguration
		return unit.Invalid, false
	}

	id, err := reg.Resolve(name)
	if err != nil {
		d := res.AddError("unknown_unit", fmt.Sprintf("unknown unit %q", name), loc)
		d.Cause = err

		var unknown *unit.UnknownUnitError
		if errors.As(err, &unknown) {
			d.Suggestions = unknown.Suggestions
		}

		return unit.Invalid, false
	}

	return id, true
}

// TransformOf returns the graph transform for a conversion entry. The entry
// must have a value.
func TransformOf(c Conversion) graph.Transform {
	if c.Kind == KindOffset {
		return graph.Offset(*c.Value)
	}

	return graph.Scale(*c.Value)
}

func factorField(kind string) string {
	if kind == KindOffset {
		return "offset"
	}

	return "factor"
}
