package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Format is a profile file encoding.
type Format string

// Supported profile formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions other than .yaml, .yml
// and .json.
var ErrUnknownFormat = errors.New("unknown profile format")

// FormatFromPath picks the format from a file extension. Stdin ("-") is
// read as YAML, which also accepts JSON documents.
func FormatFromPath(path string) (Format, error) {
	if path == "-" {
		return FormatYAML, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (use .yaml, .yml or .json)", ErrUnknownFormat, path)
	}
}

// Decode reads a profile from r. An empty document yields an empty profile.
// Only a syntax error fails; fields of the wrong type are coerced or dropped
// by FromValue. The result is normalized.
func Decode(r io.Reader, format Format) (Data, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Data{}, fmt.Errorf("reading profile: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Normalize(Data{}), nil
	}

	var doc any
	switch format {
	case FormatJSON:
		err = json.Unmarshal(raw, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Data{}, fmt.Errorf("parsing %s profile: %w", format, err)
	}
	return FromValue(doc), nil
}

// Load reads and decodes the profile at path, choosing the format from its
// extension.
func Load(path string) (Data, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Data{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("opening profile: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only

	return Decode(file, format)
}

// Encode serializes d in the given format.
func Encode(d Data, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding profile JSON: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, fmt.Errorf("encoding profile YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding profile YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes d to path atomically in the format implied by its extension.
func Save(path string, d Data) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	content, err := Encode(d, format)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("writing profile %s: %w", path, err)
	}
	return nil
}
