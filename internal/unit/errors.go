package unit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName     = errors.New("unit name cannot be empty")
	ErrEmptyAlias    = errors.New("unit alias cannot be empty")
	ErrDuplicateUnit = errors.New("duplicate unit")
	ErrUnknownUnit   = errors.New("unknown unit")
)

// UnknownUnitError is returned when a name or alias is not registered.
type UnknownUnitError struct {
	// Name is the exact string that was looked up.
	Name string
	// Suggestions are registered names close to Name, best first.
	Suggestions []string
}

func (e *UnknownUnitError) Error() string {
	msg := fmt.Sprintf("cannot find unit %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + quoteJoin(e.Suggestions) + "?)"
	}

	return msg
}

func (e *UnknownUnitError) Is(target error) bool { return target == ErrUnknownUnit }

// DuplicateUnitError is returned when a name or alias is already taken by
// another unit.
type DuplicateUnitError struct {
	Name string
	// Existing is the canonical name of the unit that already owns Name.
	Existing string
}

func (e *DuplicateUnitError) Error() string {
	if e.Existing == e.Name {
		return fmt.Sprintf("unit %q already exists", e.Name)
	}

	return fmt.Sprintf("name %q already belongs to unit %q", e.Name, e.Existing)
}

func (e *DuplicateUnitError) Is(target error) bool { return target == ErrDuplicateUnit }

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}

	return strings.Join(quoted, " or ")
}
