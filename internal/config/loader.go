package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"unitconv/internal/common"
)

// LoadFile loads and parses a configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the CLI flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes data in the given format. Unknown fields and values of the
// wrong type are rejected with ErrInvalidConfiguration.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty YAML document", ErrInvalidConfiguration)
			}

			return nil, fmt.Errorf("%w: failed to parse YAML: %w", ErrInvalidConfiguration, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty JSON document", ErrInvalidConfiguration)
			}

			return nil, fmt.Errorf("%w: failed to parse JSON: %w", ErrInvalidConfiguration, err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.Units {
		f.Units[i].Aliases = common.OrEmpty(f.Units[i].Aliases)
	}

	f.Units = common.OrEmpty(f.Units)
	f.Scale = common.OrEmpty(f.Scale)
	f.Offset = common.OrEmpty(f.Offset)
}

// Marshal serializes a File in the given format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

// WriteFile atomically writes f to path, in the format implied by its
// extension. Readers, including a watching session, never see a partial file.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f, FormatForPath(path))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
