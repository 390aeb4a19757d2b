package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samwightt/dgx/pkg/diagnostic"
	"github.com/samwightt/dgx/pkg/render"
	"github.com/spf13/cobra"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// ErrValidationFailed is returned when the schema fails validation.
// This is a sentinel error that indicates the schema is invalid,
// not that the command itself failed.
var ErrValidationFailed = errors.New("validation failed")

func convertGQLErrors(errs gqlerror.List) []ValidationError {
	var result []ValidationError
	for _, err := range errs {
		valErr := ValidationError{
			Message: err.Message,
			Rule:    err.Rule,
		}
		for _, loc := range err.Locations {
			valErr.Locations = append(valErr.Locations, Location{
				Line:   loc.Line,
				Column: loc.Column,
			})
		}
		result = append(result, valErr)
	}
	return result
}

// validateSchemaText checks the input schema against the standard
// GraphQL grammar. Dgraph's admin document is close to but not quite
// standard GraphQL (its custom directives are undeclared, for one), so
// this catches textual damage rather than enforcing the full spec.
func validateSchemaText(sourceName string, content string) *ValidationResult {
	source := &ast.Source{Input: content, Name: sourceName}

	_, err := gqlparser.LoadSchema(source)
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	var list gqlerror.List
	if errors.As(err, &list) {
		return &ValidationResult{Valid: false, Errors: convertGQLErrors(list)}
	}

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		return &ValidationResult{Valid: false, Errors: convertGQLErrors(gqlerror.List{gqlErr})}
	}

	return &ValidationResult{Valid: false, Errors: []ValidationError{{Message: err.Error()}}}
}

func renderValidationErrors(sourceName string, content string, result *ValidationResult) string {
	lines := strings.Split(content, "\n")

	var out []string
	for _, valErr := range result.Errors {
		if len(valErr.Locations) == 0 {
			out = append(out, valErr.Message)
			continue
		}

		loc := valErr.Locations[0]
		out = append(out, diagnostic.RenderLocation(sourceName, loc.Line, loc.Column))
		if loc.Line >= 1 && loc.Line <= len(lines) {
			out = append(out, diagnostic.RenderSnippet(lines[loc.Line-1], loc.Line, loc.Column, 1, valErr.Message))
		} else {
			out = append(out, valErr.Message)
		}
	}
	return strings.Join(out, "\n")
}

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Checks the schema document against the GraphQL grammar",
		Long: `Checks the schema document against the standard GraphQL grammar using a
real GraphQL parser, and prints each problem with a source snippet.

dgx's own parsing is deliberately looser than the grammar - it segments
and pattern-matches text the way the admin endpoint emits it - so this
command is the place to find out whether a document is damaged, while the
other commands keep working on anything that still segments cleanly.

Exits non-zero when the schema is invalid.`,
		Example: `  # Validate a schema file
  dgx validate -s schema.graphql

  # Validate whatever a server is currently running
  dgx validate --server http://localhost:8080

  # JSON report for CI
  dgx validate -f json`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	content, err := loadSchemaText()
	if err != nil {
		return err
	}
	sourceName := schemaFilePath
	if serverURL != "" {
		sourceName = serverURL
	}

	result := validateSchemaText(sourceName, content)

	if outputFormat == render.FormatJSON {
		bytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
		if !result.Valid {
			return ErrValidationFailed
		}
		return nil
	}

	if result.Valid {
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is valid.")
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), renderValidationErrors(sourceName, content, result))
	return ErrValidationFailed
}
