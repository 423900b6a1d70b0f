package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCause = errors.New("cause")

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Err())

	d.AddWarning("isolated_unit", `unit "Rankine" has no conversions`, "units[3]")
	assert.True(t, d.IsValid(), "warnings do not invalidate")

	e := d.AddError("unknown_unit", `unknown unit "Celcius"`, "conversions_scale[0].from")
	e.Suggestions = []string{"Celsius"}
	e.Cause = errCause

	d.AddError("missing_factor", "factor is required", "conversions_scale[1]")

	require.True(t, d.HasErrors())
	assert.Equal(t, []string{"unknown_unit", "missing_factor"}, d.Codes())
	assert.Len(t, d.All(), 3)

	err := d.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, errCause)
	assert.Equal(t,
		`conversions_scale[0].from: [unknown_unit] unknown unit "Celcius" (did you mean Celsius?); `+
			`conversions_scale[1]: [missing_factor] factor is required`,
		err.Error())
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "x", "")
	b.AddError("y", "y", "")
	b.AddInfo("z", "z", "")

	a.Merge(b)
	assert.Equal(t, []string{"x", "y"}, a.Codes())
	assert.Len(t, a.Infos, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestDiagnosticStringWithoutLocation(t *testing.T) {
	assert.Equal(t, "[no_units] no units", Diagnostic{Code: "no_units", Message: "no units"}.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}
