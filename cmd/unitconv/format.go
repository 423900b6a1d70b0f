package main

import (
	"strconv"

	"unitconv/internal/convert"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatStep(s convert.Step) string {
	return s.From + " -> " + s.To + "  " + s.Transform.String() + "  (" + s.Origin.String() + ")"
}
