package schema

import "fmt"

// ParseError reports a chunk whose leading keyword is not a recognized
// declaration kind. It aborts parsing of the whole document; a chunk we
// cannot classify means the text has gone structurally ambiguous and
// skipping it would silently drop data.
type ParseError struct {
	Chunk string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schema item not recognised as type, enum, interface or union:\n%s", e.Chunk)
}

// FormatError reports an attribute line with no `:` separating the name
// from its type.
type FormatError struct {
	Line string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("attribute line is missing the ':' separator: %q", e.Line)
}
