package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog/log"

	"github.com/samwightt/dgx/pkg/client"
	"github.com/samwightt/dgx/pkg/diagnostic"
	"github.com/samwightt/dgx/pkg/schema"
)

var tableStyle = lipgloss.NewStyle().PaddingRight(1)

func makeTable() *table.Table {
	return table.New().
		Width(120).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return tableStyle
		})
}

const maxSuggestionDistance = 5

func findClosest(input string, candidates []string) string {
	minDist := -1
	closest := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closest = c
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return closest
}

// authHeaders builds the per-request header set. The auth token comes
// from the environment and is passed down explicitly; the client itself
// holds no header state.
func authHeaders() http.Header {
	headers := http.Header{}
	if token := os.Getenv("DGRAPH_AUTH_TOKEN"); token != "" {
		headers.Set("X-Auth-Token", token)
	}
	return headers
}

// loadSchemaText reads the raw schema document from the configured
// source: a running server when --server is set, a local file otherwise.
func loadSchemaText() (string, error) {
	if serverURL != "" {
		doc, err := loadDocument()
		if err != nil {
			return "", err
		}
		return doc.Raw(), nil
	}

	path, err := filepath.Abs(schemaFilePath)
	if err != nil {
		return "", err
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func loadDocument() (*schema.Document, error) {
	if serverURL != "" {
		c := client.New(serverURL, nil).WithLogger(log.Logger)
		return c.FetchSchema(context.Background(), useGenerated, authHeaders())
	}

	text, err := loadSchemaText()
	if err != nil {
		return nil, err
	}
	return schema.Parse(text)
}

// loadCliDocument wraps loadDocument with CLI-friendly error messages,
// including a rendered snippet for chunk-level parse errors.
func loadCliDocument() (*schema.Document, error) {
	doc, err := loadDocument()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("schema file does not exist: %s", schemaFilePath)
		}

		var parseErr *schema.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("schema parsing error:\n%s",
				diagnostic.RenderChunk(parseErr.Chunk, "not a type, enum, interface or union"))
		}

		var formatErr *schema.FormatError
		if errors.As(err, &formatErr) {
			return nil, fmt.Errorf("schema parsing error:\n%s",
				diagnostic.RenderChunk(formatErr.Line, "attribute line is missing ':'"))
		}

		return nil, err
	}
	return doc, nil
}

// validateItemExists checks if an item exists in the document and returns a helpful
// error with a "did you mean" suggestion if it doesn't.
// The context parameter is used to customize the error message (e.g., "type", "enum").
func validateItemExists(doc *schema.Document, name, context string) error {
	if _, ok := doc.Lookup(name); !ok {
		if suggestion := findClosest(name, doc.Names()); suggestion != "" {
			return fmt.Errorf("%s '%s' does not exist in schema, did you mean '%s'?", context, name, suggestion)
		}
		return fmt.Errorf("%s '%s' does not exist in schema", context, name)
	}
	return nil
}

// baseTypeName returns the underlying named type of an attribute's
// (potentially list-wrapped) type text. For example, [Post] returns "Post".
func baseTypeName(typeText string) string {
	return strings.Trim(typeText, "[] ")
}

// filterSlice returns a new slice containing only the elements that satisfy the predicate.
func filterSlice[T any](items []T, predicate func(T) bool) []T {
	var result []T
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// pluck maps a slice to the field the selector extracts.
func pluck[T any](items []T, selector func(T) string) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = selector(item)
	}
	return result
}
