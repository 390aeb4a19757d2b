package schema

import "strings"

// chunkDocument splits an input schema into one raw chunk per top-level
// declaration.
//
// Brace-delimited blocks terminate with `}` followed by a newline, so
// the document can be segmented on that pair once comment-only lines are
// gone. Union declarations are single lines with no such terminator and
// cannot be found by the brace split; they are pulled out first and
// appended after every brace-delimited chunk. Unions therefore always
// sort last regardless of where they appear in the source. That ordering
// is observable through Document.Items and must stay as it is.
func chunkDocument(input string) []string {
	var unions []string
	var kept []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "union"):
			unions = append(unions, line)
		case strings.HasPrefix(line, "#"):
			// comment-only line
		default:
			kept = append(kept, line)
		}
	}

	var chunks []string
	for _, chunk := range strings.Split(strings.Join(kept, "\n"), "}\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return append(chunks, unions...)
}
