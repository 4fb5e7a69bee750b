// Package output encodes command results as text, JSON, YAML or TOML.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

func ParseFormat(raw string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(raw)))
	switch format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w %q (want text, json, yaml or toml)", ErrUnknownFormat, raw)
	}
}

// Formatter encodes structured data.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns nil for FormatText; text output is produced by the
// caller's own view.
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTOML:
		return &TOMLFormatter{}, nil
	case FormatText:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Write renders data in the requested format. text is only called for
// FormatText.
func Write(w io.Writer, format Format, data any, text func() (string, error)) error {
	formatter, err := NewFormatter(format)
	if err != nil {
		return err
	}

	if formatter != nil {
		return formatter.Format(w, data)
	}

	rendered, err := text()
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	_, err = io.WriteString(w, rendered)
	return err
}
