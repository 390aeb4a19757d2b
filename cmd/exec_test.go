package cmd_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samwightt/dgx/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_DryRun(t *testing.T) {
	stdout, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost",
		"--arg", "filter.title.anyofterms=GraphQL",
		"--field", "title", "--field", "url",
		"--dry-run",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"query queryPost {queryPost(filter: {title: {anyofterms: \"GraphQL\"}}){title,\nurl}}",
		strings.TrimSuffix(stdout, "\n"))
}

func TestExec_DryRun_HasArgIsBareword(t *testing.T) {
	stdout, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost",
		"--arg", "has=title",
		"--field", "title",
		"--dry-run",
	})
	require.NoError(t, err)

	assert.Contains(t, stdout, "queryPost(has: title)")
}

func TestExec_DryRun_ListArg(t *testing.T) {
	stdout, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost",
		"--list-arg", `order=asc,desc`,
		"--field", "title",
		"--dry-run",
	})
	require.NoError(t, err)

	assert.Contains(t, stdout, "queryPost(order: asc, desc)")
}

func TestExec_DryRun_NoArgsMeansNoParentheses(t *testing.T) {
	stdout, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "getPost", "--field", "title", "--dry-run",
	})
	require.NoError(t, err)

	assert.Equal(t, "query getPost {getPost{title}}", strings.TrimSuffix(stdout, "\n"))
}

func TestExec_Mutation_DryRun(t *testing.T) {
	stdout, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "addPost", "--mutation",
		"--arg", "input.title=Hello",
		"--field", "numUids",
		"--dry-run",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"mutation addPost {addPost(input: {title: \"Hello\"}){numUids}}",
		strings.TrimSuffix(stdout, "\n"))
}

func TestExec_RejectsBadQueryName(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "listPosts", "--field", "title", "--dry-run",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must start with one of: aggregate, get, query")
}

func TestExec_RejectsBadMutationName(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost", "--mutation", "--field", "title", "--dry-run",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must start with one of: add, delete, update")
}

func TestExec_RequiresField(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{"exec", "queryPost", "--dry-run"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one --field is required")
}

func TestExec_RequiresServerWithoutDryRun(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{"exec", "queryPost", "--field", "title"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--server is required")
}

func TestExec_MalformedArg(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost", "--arg", "novalue", "--field", "title", "--dry-run",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--arg must be key=value")
}

func TestExec_DottedKeyOverPlainValueConflict(t *testing.T) {
	_, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost",
		"--arg", "filter=all",
		"--arg", "filter.title.anyofterms=GraphQL",
		"--field", "title",
		"--dry-run",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already set to a plain value")
}

func TestExec_PostsToGraphQLEndpoint(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"data": {"queryPost": [{"title": "Hello"}]}}`))
	}))
	defer server.Close()

	stdout, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost",
		"--server", server.URL,
		"--field", "title",
	})
	require.NoError(t, err)

	assert.Equal(t, "/graphql", gotPath)
	assert.Equal(t, "query queryPost {queryPost{title}}", gotBody)
	assert.Contains(t, stdout, `"title": "Hello"`)
}

func TestExec_ServerErrorsSurface(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "no such predicate"}]}`))
	}))
	defer server.Close()

	_, _, err := cmd.ExecuteWithArgs([]string{
		"exec", "queryPost",
		"--server", server.URL,
		"--field", "title",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such predicate")
}
