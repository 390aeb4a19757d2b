// Package render turns command output into one of the supported output
// formats: JSON for scripting, plain text for piping, pretty lipgloss
// tables for terminals, and gql for re-emitting items as schema
// declaration text.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
	FormatGQL    Format = "gql"
)

var ValidFormats = []Format{FormatJSON, FormatText, FormatPretty, FormatGQL}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "pretty":
		return FormatPretty, nil
	case "gql":
		return FormatGQL, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: json, text, pretty, gql)", s)
	}
}

// Renderer renders a slice of command output values. TextFormat renders
// one value per line; PrettyFormat renders the whole slice at once
// (usually a table); GQLFormat re-emits values as schema text and is
// only defined for commands whose output maps back to declarations.
type Renderer[T any] struct {
	Data         []T
	TextFormat   func(T) string
	PrettyFormat func([]T) string
	GQLFormat    func(T) string
}

func (r Renderer[T]) Render(format Format) (string, error) {
	switch format {
	case FormatJSON:
		return r.renderJSON()
	case FormatPretty:
		return r.renderPretty()
	case FormatText:
		return r.renderLines(r.TextFormat, "text")
	case FormatGQL:
		return r.renderLines(r.GQLFormat, "gql")
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (r Renderer[T]) renderPretty() (string, error) {
	if r.PrettyFormat == nil {
		return "", fmt.Errorf("pretty format not defined for this type")
	}
	return r.PrettyFormat(r.Data), nil
}

func (r Renderer[T]) renderJSON() (string, error) {
	bytes, err := json.MarshalIndent(r.Data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (r Renderer[T]) renderLines(format func(T) string, name string) (string, error) {
	if format == nil {
		return "", fmt.Errorf("%s format not defined for this type", name)
	}

	var lines []string
	for _, item := range r.Data {
		lines = append(lines, format(item))
	}
	return strings.Join(lines, "\n"), nil
}
