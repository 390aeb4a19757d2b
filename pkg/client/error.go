package client

import (
	"encoding/json"
	"strings"
)

// ErrorLocation is a position inside the operation text that a server
// error points at.
type ErrorLocation struct {
	Line, Column int
}

// Error is a single entry from a GraphQL response's errors list.
type Error struct {
	Message    string
	Locations  []ErrorLocation
	Path       []interface{}
	Extensions json.RawMessage
}

func (err *Error) Error() string {
	return "dgx: server failure: " + err.Message
}

// ErrorList is a response's full errors payload. Its message joins
// every entry, since the admin endpoint routinely reports several
// errors for one request.
type ErrorList []Error

func (errs ErrorList) Error() string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Message
	}
	return "dgx: server failure: " + strings.Join(messages, "\n")
}
