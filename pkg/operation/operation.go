// Package operation builds GraphQL request text for Dgraph queries,
// mutations and the admin schema introspection. An Operation is fully
// built or fails to build; there is no partial state, and the text is
// the only artifact the transport layer needs.
package operation

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the operation kind written into the wire text.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
	// KindSchema is the admin getGQLSchema introspection request. Its
	// wire text is a fixed template, never assembled from parts.
	KindSchema Kind = "schema"
)

// Dgraph generates its root fields from the schema with fixed name
// prefixes, so anything else is a typo we can reject before sending.
var (
	queryPrefixes    = []string{"aggregate", "get", "query"}
	mutationPrefixes = []string{"add", "delete", "update"}
)

// Operation is a fully serialized GraphQL request. Immutable once
// constructed; safe to share across goroutines.
type Operation struct {
	kind         Kind
	name         string
	returnFields []string
	text         string
}

// NewQuery builds a query operation. The name must start with
// aggregate, get or query.
func NewQuery(name string, returnFields []string, args *Args) (*Operation, error) {
	return build(KindQuery, name, returnFields, args, queryPrefixes)
}

// NewMutation builds a mutation operation. The name must start with
// add, delete or update.
func NewMutation(name string, returnFields []string, args *Args) (*Operation, error) {
	return build(KindMutation, name, returnFields, args, mutationPrefixes)
}

func build(kind Kind, name string, returnFields []string, args *Args, prefixes []string) (*Operation, error) {
	if !hasAllowedPrefix(name, prefixes) {
		return nil, &ValidationError{Kind: kind, Name: name, Prefixes: prefixes}
	}

	argsText := ""
	if args != nil {
		serialized, err := args.serialize()
		if err != nil {
			return nil, err
		}
		argsText = "(" + serialized + ")"
	}

	fieldsText := "{" + strings.Join(returnFields, ",\n") + "}"

	return &Operation{
		kind:         kind,
		name:         name,
		returnFields: slices.Clone(returnFields),
		text:         fmt.Sprintf("%s %s {%s%s%s}", kind, name, name, argsText, fieldsText),
	}, nil
}

func hasAllowedPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (o *Operation) Kind() Kind   { return o.kind }
func (o *Operation) Name() string { return o.name }

// Text returns the serialized wire text.
func (o *Operation) Text() string { return o.text }

// ReturnFields returns a copy of the return-field selection.
func (o *Operation) ReturnFields() []string { return slices.Clone(o.returnFields) }
