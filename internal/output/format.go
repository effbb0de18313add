package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format specifies how a command prints structured results.
type Format string

const (
	// FormatTable outputs a styled table.
	FormatTable Format = "table"

	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a case-insensitive format name. The second result
// reports whether the name is known.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return Format(s), false
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}

// Encode writes v to w as JSON or YAML. YAML output follows the JSON field
// tags. FormatTable is rejected; callers render tables themselves.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("cannot encode format %q", format)
	}
}
