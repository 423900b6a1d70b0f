package unit

import (
	"slices"
	"strings"
)

// ID identifies a unit within a registry.
type ID int

// Invalid is returned alongside errors.
const Invalid ID = -1

// Unit is a named measurement standard.
type Unit struct {
	ID   ID
	Name string
	// Aliases never contains Name.
	Aliases []string
	// Intermediate units exist only to decompose composite conversions and
	// are hidden from listings.
	Intermediate bool
}

// Names returns the canonical name followed by the aliases.
func (u Unit) Names() []string {
	return append([]string{u.Name}, u.Aliases...)
}

// HasName reports whether s is the canonical name or one of the aliases.
func (u Unit) HasName(s string) bool {
	return u.Name == s || slices.Contains(u.Aliases, s)
}

// String renders the unit as "Kelvin (K, kelvin)".
func (u Unit) String() string {
	if len(u.Aliases) == 0 {
		return u.Name
	}

	return u.Name + " (" + strings.Join(u.Aliases, ", ") + ")"
}
