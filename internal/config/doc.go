// Package config provides the unit configuration schema, JSON/YAML parsing,
// structural validation and atomic writing.
//
// # Schema Overview
//
//	{
//	  "case_insensitive": false,
//	  "units": [
//	    {"name": "Celsius", "aliases": ["C", "celsius"]},
//	    {"name": "Fahrenheit", "aliases": ["F"]},
//	    {"name": "_C1", "aliases": [], "intermediate": true}
//	  ],
//	  "conversions_scale": [
//	    {"from": "Celsius", "to": "_C1", "factor": 1.8}
//	  ],
//	  "conversions_offset": [
//	    {"from": "_C1", "to": "Fahrenheit", "offset": 32}
//	  ]
//	}
//
// The same document may be written in YAML; the format is chosen from the
// file extension (.yaml/.yml are YAML, everything else is JSON).
//
// Every conversion is a single directed step. Unless an entry sets
// "one_way": true, the converter also adds the inverse step (reciprocal
// factor or negated offset) when the reverse pair has no edge of its own.
//
// # Validation
//
// Validate reports every problem at once as diagnostics with stable codes:
// missing_name, empty_alias, duplicate_name, missing_from, missing_to,
// unknown_unit, missing_factor, missing_offset, invalid_factor,
// invalid_offset, self_conversion, duplicate_conversion. Units without any
// conversion produce an isolated_unit warning, and connected units that fall
// into separate groups produce a disconnected_units info.
package config
