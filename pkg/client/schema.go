package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/samwightt/dgx/pkg/operation"
	"github.com/samwightt/dgx/pkg/schema"
)

// FetchSchema pulls the current GraphQL schema from the admin endpoint
// and parses it. When generated is true the combined generatedSchema
// document is requested, which also carries the generated artifact
// segments. Dgraph emits U+2010 hyphens inside generated documents;
// those are normalized to ASCII before parsing.
func (c *Client) FetchSchema(ctx context.Context, generated bool, headers http.Header) (*schema.Document, error) {
	op := operation.NewSchemaQuery(generated)

	data, err := c.Execute(ctx, Admin, op, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schema: %w", err)
	}

	var payload struct {
		GetGQLSchema struct {
			Schema          string `json:"schema"`
			GeneratedSchema string `json:"generatedSchema"`
		} `json:"getGQLSchema"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode schema payload: %v", err)
	}

	text := payload.GetGQLSchema.Schema
	if generated {
		text = strings.ReplaceAll(payload.GetGQLSchema.GeneratedSchema, "‐", "-")
	}
	return schema.Parse(text)
}
