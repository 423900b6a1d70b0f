package config

// File is a parsed unit configuration.
type File struct {
	// CaseInsensitive makes unit names and aliases match regardless of case.
	CaseInsensitive bool        `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	Units           []UnitDef   `json:"units" yaml:"units"`
	Scale           []ScaleDef  `json:"conversions_scale" yaml:"conversions_scale"`
	Offset          []OffsetDef `json:"conversions_offset" yaml:"conversions_offset"`
}

// UnitDef declares a unit.
type UnitDef struct {
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases" yaml:"aliases"`
	// Intermediate units are hidden from listings.
	Intermediate bool `json:"intermediate,omitempty" yaml:"intermediate,omitempty"`
}

// ScaleDef declares a multiplicative conversion: to = from * Factor.
type ScaleDef struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Factor *float64 `json:"factor" yaml:"factor"`
	// OneWay suppresses the generated inverse edge.
	OneWay bool `json:"one_way,omitempty" yaml:"one_way,omitempty"`
}

// OffsetDef declares an additive conversion: to = from + Offset.
type OffsetDef struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Offset *float64 `json:"offset" yaml:"offset"`
	OneWay bool     `json:"one_way,omitempty" yaml:"one_way,omitempty"`
}

// Conversion is the kind-agnostic view of a ScaleDef or OffsetDef.
type Conversion struct {
	// Location is the entry path, e.g. "conversions_scale[3]".
	Location string
	From     string
	To       string
	Kind     string
	Value    *float64
	OneWay   bool
}

// Conversion kinds as reported in Conversion.Kind.
const (
	KindScale  = "scale"
	KindOffset = "offset"
)

// Conversions returns all scale entries followed by all offset entries,
// each in file order. This is the order edges are added to the graph.
func (f *File) Conversions() []Conversion {
	out := make([]Conversion, 0, len(f.Scale)+len(f.Offset))

	for i, s := range f.Scale {
		out = append(out, Conversion{
			Location: indexed("conversions_scale", i),
			From:     s.From,
			To:       s.To,
			Kind:     KindScale,
			Value:    s.Factor,
			OneWay:   s.OneWay,
		})
	}

	for i, o := range f.Offset {
		out = append(out, Conversion{
			Location: indexed("conversions_offset", i),
			From:     o.From,
			To:       o.To,
			Kind:     KindOffset,
			Value:    o.Offset,
			OneWay:   o.OneWay,
		})
	}

	return out
}

// Float returns a pointer to v, for building configs in code.
func Float(v float64) *float64 {
	return &v
}
