// Package dataset reads (x, y) sample sets for polytool from YAML, TOML, JSON
// or CSV files and writes command results as JSON or YAML.
//
// Every format decodes into the same Dataset shape:
//
//	name: thermistor   # optional
//	x: [0, 10, 20]     # optional for fit (implicit 0..n-1)
//	y: [1.2, 3.4, 5.1] # required
//
// CSV has either two columns (x,y) or one column (y), with an optional header row.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format names a dataset encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var (
	// ErrUnknownFormat is returned for an unrecognised file extension or format name.
	ErrUnknownFormat = errors.New("dataset: unknown format")

	// ErrNoSamples is returned when a dataset has no y values.
	ErrNoSamples = errors.New("dataset: no y samples")

	// ErrLengthMismatch is returned when x is present and len(x) != len(y).
	ErrLengthMismatch = errors.New("dataset: x and y differ in length")
)

// Dataset is one series of samples. X is nil when the file omits it.
type Dataset struct {
	Name string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	X    []float64 `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y    []float64 `json:"y" yaml:"y" toml:"y"`
}

// Validate checks that Y is non-empty and that X, when present, matches it.
func (d *Dataset) Validate() error {
	if len(d.Y) == 0 {
		return ErrNoSamples
	}
	if d.X != nil && len(d.X) != len(d.Y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(d.X), len(d.Y))
	}

	return nil
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and validates the dataset at path, choosing the decoder by extension.
func Load(path string) (*Dataset, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	d, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return d, nil
}

// Decode parses data in format f and validates the result.
func Decode(data []byte, f Format) (*Dataset, error) {
	var (
		d   Dataset
		err error
	)
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &d)
	case FormatTOML:
		err = toml.Unmarshal(data, &d)
	case FormatJSON:
		err = sonic.Unmarshal(data, &d)
	case FormatCSV:
		err = decodeCSV(data, &d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s parse error: %w", f, err)
	}
	if err = d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// decodeCSV reads one (y) or two (x,y) numeric columns. A first row that does
// not parse as numbers is treated as a header.
func decodeCSV(data []byte, d *Dataset) error {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	width := len(records[0])
	if width != 1 && width != 2 {
		return fmt.Errorf("expected 1 or 2 columns, got %d", width)
	}
	if _, perr := strconv.ParseFloat(records[0][width-1], 64); perr != nil {
		records = records[1:]
	}

	if width == 2 {
		d.X = make([]float64, 0, len(records))
	}
	d.Y = make([]float64, 0, len(records))
	for i, rec := range records {
		vals := make([]float64, len(rec))
		for j, field := range rec {
			if vals[j], err = strconv.ParseFloat(field, 64); err != nil {
				return fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
		}
		if width == 2 {
			d.X = append(d.X, vals[0])
		}
		d.Y = append(d.Y, vals[width-1])
	}

	return nil
}

// Encode writes v to w as indented JSON (sonic) or YAML.
func Encode(w io.Writer, v any, f Format) error {
	var (
		out []byte
		err error
	)
	switch f {
	case FormatJSON:
		out, err = sonic.MarshalIndent(v, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%s encoding error: %w", f, err)
	}
	_, err = w.Write(out)

	return err
}

// ParseFloats parses a comma-separated list such as "1, 2.5,-3".
// An empty string yields nil.
func ParseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	var err error
	for i, p := range parts {
		if out[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return nil, fmt.Errorf("dataset: value %d: %w", i+1, err)
		}
	}

	return out, nil
}
