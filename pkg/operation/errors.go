package operation

import (
	"fmt"
	"strings"
)

// ValidationError reports an operation name that does not carry one of
// the prefixes its kind allows.
type ValidationError struct {
	Kind     Kind
	Name     string
	Prefixes []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s name %q must start with one of: %s",
		e.Kind, e.Name, strings.Join(e.Prefixes, ", "))
}

// SerializationError reports an argument value of an unsupported kind.
// Only strings, nested *Args and []string literals can be serialized.
type SerializationError struct {
	Key   string
	Value any
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("argument %q has unsupported value type %T", e.Key, e.Value)
}
