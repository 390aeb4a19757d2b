package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkDocument_SplitsOnClosingBrace(t *testing.T) {
	input := `type Post {
	title: String!
}

type Author {
	name: String!
}`

	chunks := chunkDocument(input)
	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "type Post")
	assert.Contains(t, chunks[1], "type Author")
}

func TestChunkDocument_DropsCommentOnlyLines(t *testing.T) {
	input := `# Dgraph.Authorization header
type Post {
	# internal note
	title: String!
}`

	chunks := chunkDocument(input)
	require.Len(t, chunks, 1)
	assert.NotContains(t, chunks[0], "Dgraph.Authorization")
	assert.NotContains(t, chunks[0], "internal note")
}

func TestChunkDocument_UnionsAlwaysSortLast(t *testing.T) {
	// A union between two types still chunks after both of them. The
	// generic splitter works off the }-newline terminator that unions
	// do not have, so they are pulled out up front and appended.
	input := `type Post {
	title: String!
}

union SearchResult = Post | Author

type Author {
	name: String!
}`

	chunks := chunkDocument(input)
	require.Len(t, chunks, 3)
	assert.Contains(t, chunks[0], "type Post")
	assert.Contains(t, chunks[1], "type Author")
	assert.Equal(t, "union SearchResult = Post | Author", chunks[2])
}

func TestChunkDocument_EmptyInput(t *testing.T) {
	assert.Empty(t, chunkDocument(""))
}

func TestChunkDocument_IndentedUnionIsStillExtracted(t *testing.T) {
	chunks := chunkDocument("   union U = A | B")
	require.Len(t, chunks, 1)
	assert.Equal(t, "union U = A | B", chunks[0])
}
