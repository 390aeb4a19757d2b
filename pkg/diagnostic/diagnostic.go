// Package diagnostic renders error messages with source snippets: a
// gutter with line numbers, the offending text, and a caret underline.
// It is used both for GraphQL grammar errors (which carry a line and
// column) and for chunk-level parse errors (which carry the raw chunk).
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RenderSnippet renders a source line with line number, gutter, and
// underline caret:
//
//	3 | type Post {
//	  |      ^^^^ error message here
func RenderSnippet(source string, lineNum int, column int, length int, message string) string {
	if length < 1 {
		length = 1
	}
	if column < 1 {
		column = 1
	}

	numStr := strconv.Itoa(lineNum)
	gutterWidth := len(numStr)

	lineNumStyled := gutterStyle.Render(numStr)
	pipe := gutterStyle.Render("|")
	emptyGutter := strings.Repeat(" ", gutterWidth)

	codeLine := lineNumStyled + " " + pipe + " " + source

	padding := strings.Repeat(" ", column-1)
	carets := caretStyle.Render(strings.Repeat("^", length))
	msgRendered := ""
	if message != "" {
		msgRendered = " " + messageStyle.Render(message)
	}
	underLine := emptyGutter + " " + pipe + " " + padding + carets + msgRendered

	return codeLine + "\n" + underLine
}

// RenderChunk renders a whole offending chunk with a message under its
// first line. Parse errors carry chunk text but no position, so the
// caret spans the first line's leading token.
func RenderChunk(chunk string, message string) string {
	lines := strings.Split(strings.TrimRight(chunk, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return messageStyle.Render(message)
	}

	first := lines[0]
	length := len(first)
	if idx := strings.IndexAny(first, " \t"); idx > 0 {
		length = idx
	}

	out := []string{RenderSnippet(first, 1, 1, length, message)}
	pipe := gutterStyle.Render("|")
	for i, line := range lines[1:] {
		num := strconv.Itoa(i + 2)
		out = append(out, gutterStyle.Render(num)+" "+pipe+" "+line)
	}
	return strings.Join(out, "\n")
}

// RenderLocation renders a location header like "--> schema.graphql:3:9".
func RenderLocation(filename string, line int, column int) string {
	loc := filename + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
	arrow := gutterStyle.Render("-->")
	return arrow + " " + loc
}
