package operation

import "strings"

// Args is an insertion-ordered argument tree. The wire text we produce
// is order-sensitive and Go maps do not keep insertion order, so
// arguments are collected through Set instead of a plain map.
//
// Values may be a string, a nested *Args, or a []string whose elements
// are preformatted literal text. List elements are joined verbatim with
// no quoting or escaping; the caller is responsible for making each
// element valid GraphQL literal text.
type Args struct {
	keys   []string
	values map[string]any
}

// NewArgs returns an empty argument tree.
func NewArgs() *Args {
	return &Args{values: make(map[string]any)}
}

// Set adds or replaces a value and returns the receiver for chaining.
func (a *Args) Set(key string, value any) *Args {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

// Get returns the value set for key, if any.
func (a *Args) Get(key string) (any, bool) {
	value, ok := a.values[key]
	return value, ok
}

// Len returns the number of keys set.
func (a *Args) Len() int { return len(a.keys) }

// serialize renders the tree as GraphQL argument text, without the
// surrounding parentheses.
func (a *Args) serialize() (string, error) {
	parts := make([]string, 0, len(a.keys))
	for _, key := range a.keys {
		switch v := a.values[key].(type) {
		case string:
			// `has` takes a bareword predicate name, not a string
			// literal.
			if key == "has" {
				parts = append(parts, key+": "+v)
			} else {
				parts = append(parts, key+`: "`+v+`"`)
			}
		case *Args:
			nested, err := v.serialize()
			if err != nil {
				return "", err
			}
			parts = append(parts, key+": {"+nested+"}")
		case []string:
			parts = append(parts, key+": "+strings.Join(v, ", "))
		default:
			return "", &SerializationError{Key: key, Value: a.values[key]}
		}
	}
	return strings.Join(parts, ", "), nil
}
