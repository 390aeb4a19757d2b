package cmd_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/samwightt/dgx/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const typesTestSchema = `
type Post {
	title: String! @search(by: [term]) # the post title
	url: String
	author: Author!
}

union SearchResult = Post | Author

type Author {
	name: String! @id
	posts: [Post] @hasInverse(field: author)
}

enum Status {
	ACTIVE
	INACTIVE
}

interface HasAuthor {
	author: Author!
}
`

func setupTypesTestSchema(t *testing.T) string {
	t.Helper()
	return writeTypesTestSchema(t, typesTestSchema)
}

func writeTypesTestSchema(t *testing.T, schema string) string {
	t.Helper()
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.graphql")
	err := os.WriteFile(schemaPath, []byte(schema), 0644)
	require.NoError(t, err)
	return schemaPath
}

func TestTypes_TextFormat(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "type Post")
	assert.Contains(t, stdout, "type Author")
	assert.Contains(t, stdout, "enum Status")
	assert.Contains(t, stdout, "interface HasAuthor")
	assert.Contains(t, stdout, "union SearchResult")
}

func TestTypes_UnionsListLast(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "json"})
	require.NoError(t, err)

	var items []struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
	}
	err = json.Unmarshal([]byte(stdout), &items)
	require.NoError(t, err)

	// The union is declared second in the source but always sorts after
	// every brace-delimited item.
	require.Len(t, items, 5)
	assert.Equal(t, "SearchResult", items[4].Name)
	assert.Equal(t, "union", items[4].Kind)
}

func TestTypes_JSONFormat(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "json"})
	require.NoError(t, err)

	var items []struct {
		Name       string   `json:"name"`
		Kind       string   `json:"kind"`
		Attributes int      `json:"attributes"`
		Options    []string `json:"options"`
		Members    []string `json:"members"`
	}
	err = json.Unmarshal([]byte(stdout), &items)
	require.NoError(t, err)

	itemMap := make(map[string]struct {
		Kind       string
		Attributes int
		Options    []string
		Members    []string
	})
	for _, item := range items {
		itemMap[item.Name] = struct {
			Kind       string
			Attributes int
			Options    []string
			Members    []string
		}{item.Kind, item.Attributes, item.Options, item.Members}
	}

	assert.Equal(t, "type", itemMap["Post"].Kind)
	assert.Equal(t, 3, itemMap["Post"].Attributes)

	assert.Equal(t, "type", itemMap["Author"].Kind)
	assert.Equal(t, 2, itemMap["Author"].Attributes)

	assert.Equal(t, "enum", itemMap["Status"].Kind)
	assert.Equal(t, []string{"ACTIVE", "INACTIVE"}, itemMap["Status"].Options)

	assert.Equal(t, "interface", itemMap["HasAuthor"].Kind)

	assert.Equal(t, "union", itemMap["SearchResult"].Kind)
	assert.Equal(t, []string{"Post", "Author"}, itemMap["SearchResult"].Members)
}

func TestTypes_PrettyFormat(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "pretty"})
	require.NoError(t, err)

	// Pretty format should have table headers and data
	assert.Contains(t, stdout, "kind")
	assert.Contains(t, stdout, "name")
	assert.Contains(t, stdout, "detail")
	assert.Contains(t, stdout, "Post")
	assert.Contains(t, stdout, "SearchResult")
}

func TestTypes_GQLFormat(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "gql", "--kind", "union"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "union SearchResult = Post | Author")
}

func TestTypes_NonExistentSchema(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", "/nonexistent/schema.graphql", "-f", "text"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestTypes_InvalidSchemaChunk(t *testing.T) {
	schemaPath := writeTypesTestSchema(t, `
type Post {
	title: String!
}

scalar DateTime {
	x: Int
}
`)

	_, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schema parsing error")
	assert.Contains(t, err.Error(), "scalar DateTime")
}

func TestTypes_KindFilter_Single(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text", "--kind", "enum"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "enum Status")

	assert.NotContains(t, stdout, "type Post")
	assert.NotContains(t, stdout, "interface HasAuthor")
	assert.NotContains(t, stdout, "union SearchResult")
}

func TestTypes_KindFilter_Multiple(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text", "--kind", "enum", "--kind", "union"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "enum Status")
	assert.Contains(t, stdout, "union SearchResult")

	assert.NotContains(t, stdout, "type Post")
	assert.NotContains(t, stdout, "interface HasAuthor")
}

func TestTypes_KindFilter_CaseInsensitive(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text", "--kind", "ENUM"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "enum Status")
}

func TestTypes_KindFilter_Invalid(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	_, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text", "--kind", "scalar"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid kind 'scalar'")
	assert.Contains(t, err.Error(), "enum, interface, type, union")
}

func TestTypes_HasFieldFilter(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text", "--has-field", "author"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "type Post")
	assert.Contains(t, stdout, "interface HasAuthor")

	assert.NotContains(t, stdout, "type Author")
	assert.NotContains(t, stdout, "enum Status")
	assert.NotContains(t, stdout, "union SearchResult")
}

func TestTypes_HasFieldFilter_MultipleFields(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text", "--has-field", "author", "--has-field", "title"})
	require.NoError(t, err)

	// Only items declaring BOTH attributes
	assert.Contains(t, stdout, "type Post")
	assert.NotContains(t, stdout, "interface HasAuthor")
}

func TestTypes_HasFieldFilter_NoMatches(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "json", "--has-field", "nonexistent"})
	require.NoError(t, err)

	var items []struct {
		Name string `json:"name"`
	}
	err = json.Unmarshal([]byte(stdout), &items)
	require.NoError(t, err)
	assert.Len(t, items, 0)
}

func TestTypes_KindFilter_CombinedWithHasField(t *testing.T) {
	schemaPath := setupTypesTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"types", "-s", schemaPath, "-f", "text", "--kind", "type", "--has-field", "author"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "type Post")

	assert.NotContains(t, stdout, "interface HasAuthor")
	assert.NotContains(t, stdout, "type Author")
}
