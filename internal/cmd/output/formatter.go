// Package output writes command results as tables, JSON or YAML.
package output

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"
)

// Formatter writes data to w in one output format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format. Table, wide and unknown
// formats all get a TableFormatter; the caller picks the columns.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter writes one JSON document. Indent empty means compact.
type JSONFormatter struct {
	Indent string
}

// Format encodes data without HTML escaping so display names and emails
// print as stored.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", f.Indent)
	return enc.Encode(data)
}

// YAMLFormatter writes block-style YAML with unindented sequences.
type YAMLFormatter struct{}

// Format encodes data as YAML.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	b, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
