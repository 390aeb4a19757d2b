// Package schema parses Dgraph GraphQL admin schema text into a typed,
// immutable model.
//
// The input is the loosely structured document returned by the admin
// endpoint's getGQLSchema query: a sequence of type, enum, interface and
// union declarations with embedded comments and directives, optionally
// wrapped in the seven-segment envelope produced by the generatedSchema
// variant of that query. The parser is deliberately text-level rather
// than grammar-level; it preserves a couple of long-standing ordering
// quirks that callers have come to depend on (see chunkDocument and
// SplitSegments).
package schema

import "strings"

// ItemKind discriminates the four top-level declaration kinds.
type ItemKind string

const (
	KindType      ItemKind = "type"
	KindInterface ItemKind = "interface"
	KindEnum      ItemKind = "enum"
	KindUnion     ItemKind = "union"
)

// Item is one parsed top-level declaration. Exactly one of the variant
// slices is populated, selected by Kind: Attributes for type and
// interface items, Options for enums, Members for unions.
type Item struct {
	Kind ItemKind `json:"kind"`
	Name string   `json:"name"`

	Attributes []Attribute `json:"attributes,omitempty"`
	Options    []string    `json:"options,omitempty"`
	Members    []string    `json:"members,omitempty"`
}

// Attribute is a single field declaration inside a type or interface
// block.
type Attribute struct {
	Name string `json:"name"`
	// Type is the field's type name with nullability and list markers
	// stripped of `!` and trailing commas, e.g. "String" or "[Post]".
	Type string `json:"type"`
	// Nullable is true unless a `!` modifier follows the type name.
	Nullable bool `json:"nullable"`
	// Directive is the text after `@`, arguments preserved verbatim,
	// trailing comment stripped. Empty when the line has no directive.
	Directive string `json:"directive,omitempty"`
	// Comment is the text after the line's last `#`, if any.
	Comment string `json:"comment,omitempty"`
}

// Text re-renders the attribute as a single declaration line, the way it
// would appear inside its block. Comments are not round-tripped.
func (a Attribute) Text() string {
	text := a.Name + ": " + a.Type
	if !a.Nullable {
		text += "!"
	}
	if a.Directive != "" {
		text += " @" + a.Directive
	}
	return text
}

// Text re-renders the item as schema-declaration text.
func (i Item) Text() string {
	switch i.Kind {
	case KindUnion:
		return "union " + i.Name + " = " + strings.Join(i.Members, " | ")
	case KindEnum:
		var b strings.Builder
		b.WriteString("enum " + i.Name + " {\n")
		for _, option := range i.Options {
			b.WriteString("\t" + option + "\n")
		}
		b.WriteString("}")
		return b.String()
	default:
		var b strings.Builder
		b.WriteString(string(i.Kind) + " " + i.Name + " {\n")
		for _, attr := range i.Attributes {
			b.WriteString("\t" + attr.Text() + "\n")
		}
		b.WriteString("}")
		return b.String()
	}
}
