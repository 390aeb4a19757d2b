package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuery_Text(t *testing.T) {
	args := NewArgs().Set("filter",
		NewArgs().Set("title",
			NewArgs().Set("anyofterms", "GraphQL")))

	op, err := NewQuery("queryPost", []string{"title", "url"}, args)
	require.NoError(t, err)

	assert.Equal(t, KindQuery, op.Kind())
	assert.Equal(t, "queryPost", op.Name())
	assert.Equal(t,
		"query queryPost {queryPost(filter: {title: {anyofterms: \"GraphQL\"}}){title,\nurl}}",
		op.Text())
}

func TestNewQuery_NoArgsMeansNoParentheses(t *testing.T) {
	op, err := NewQuery("getPost", []string{"title"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "query getPost {getPost{title}}", op.Text())
}

func TestNewQuery_AllowedPrefixes(t *testing.T) {
	for _, name := range []string{"aggregatePost", "getPost", "queryPost"} {
		_, err := NewQuery(name, []string{"count"}, nil)
		assert.NoError(t, err, name)
	}
}

func TestNewQuery_RejectsUnknownPrefix(t *testing.T) {
	_, err := NewQuery("listPosts", []string{"title"}, nil)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, KindQuery, valErr.Kind)
	assert.Equal(t, "listPosts", valErr.Name)
	assert.Equal(t, []string{"aggregate", "get", "query"}, valErr.Prefixes)
}

func TestNewMutation_Text(t *testing.T) {
	args := NewArgs().Set("input",
		NewArgs().Set("title", "Hello"))

	op, err := NewMutation("addPost", []string{"post {\ntitle}"}, args)
	require.NoError(t, err)

	assert.Equal(t, KindMutation, op.Kind())
	assert.Equal(t,
		"mutation addPost {addPost(input: {title: \"Hello\"}){post {\ntitle}}}",
		op.Text())
}

func TestNewMutation_AllowedPrefixes(t *testing.T) {
	for _, name := range []string{"addPost", "deletePost", "updatePost"} {
		_, err := NewMutation(name, []string{"numUids"}, nil)
		assert.NoError(t, err, name)
	}
}

func TestNewMutation_RejectsQueryPrefix(t *testing.T) {
	_, err := NewMutation("getPost", []string{"title"}, nil)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, []string{"add", "delete", "update"}, valErr.Prefixes)
}

func TestBuild_SerializationErrorAborts(t *testing.T) {
	op, err := NewQuery("queryPost", []string{"title"}, NewArgs().Set("first", 10))
	require.Error(t, err)
	assert.Nil(t, op)

	var serErr *SerializationError
	assert.ErrorAs(t, err, &serErr)
}

func TestOperation_ReturnFieldsIsACopy(t *testing.T) {
	op, err := NewQuery("queryPost", []string{"title", "url"}, nil)
	require.NoError(t, err)

	fields := op.ReturnFields()
	fields[0] = "mutated"

	assert.Equal(t, []string{"title", "url"}, op.ReturnFields())
}

func TestNewSchemaQuery_Templates(t *testing.T) {
	op := NewSchemaQuery(false)
	assert.Equal(t, KindSchema, op.Kind())
	assert.Equal(t, "{ getGQLSchema { schema } }", op.Text())

	generated := NewSchemaQuery(true)
	assert.Equal(t, "{ getGQLSchema { generatedSchema } }", generated.Text())
}
