package schema

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// segmentSeparator is the literal line Dgraph emits between the pieces
// of a generatedSchema response: 23 `#` characters.
const segmentSeparator = "#######################"

// expectedPieces is what splitting a well-formed seven-segment response
// on the separator produces: segment text alternates with separator
// banner text, and each named segment sits two pieces after the last.
const expectedPieces = 15

// Segments is the named decomposition of a combined admin schema
// response. A plain schema response has no separator; only InputSchema
// is set in that case and it equals the whole document.
type Segments struct {
	InputSchema         string `json:"inputSchema"`
	ExtendedDefinitions string `json:"extendedDefinitions,omitempty"`
	GeneratedTypes      string `json:"generatedTypes,omitempty"`
	GeneratedEnums      string `json:"generatedEnums,omitempty"`
	GeneratedInputs     string `json:"generatedInputs,omitempty"`
	GeneratedQuery      string `json:"generatedQuery,omitempty"`
	GeneratedMutations  string `json:"generatedMutations,omitempty"`

	split bool
}

// SplitSegments splits text on the fixed separator and assigns pieces to
// segments positionally: segment i comes from piece (i+1)*2. The mapping
// is positional, not validated; there is no tag checking, so a response
// whose segment count or order differs from the layout Dgraph produces
// yields wrong segment values. A count mismatch is logged as a warning
// and the mapping proceeds as far as the pieces allow.
func SplitSegments(text string) Segments {
	if !strings.Contains(text, segmentSeparator) {
		return Segments{InputSchema: text}
	}

	pieces := strings.Split(text, segmentSeparator)
	for i, piece := range pieces {
		piece = strings.TrimPrefix(piece, "\n\n")
		pieces[i] = strings.TrimSuffix(piece, "\n\n")
	}

	if len(pieces) != expectedPieces {
		log.Warn().
			Int("pieces", len(pieces)).
			Int("expected", expectedPieces).
			Msg("unexpected segment count in generated schema, positional mapping may be wrong")
	}

	segs := Segments{split: true}
	slots := []*string{
		&segs.InputSchema,
		&segs.ExtendedDefinitions,
		&segs.GeneratedTypes,
		&segs.GeneratedEnums,
		&segs.GeneratedInputs,
		&segs.GeneratedQuery,
		&segs.GeneratedMutations,
	}
	for i, slot := range slots {
		idx := (i + 1) * 2
		if idx < len(pieces) {
			*slot = pieces[idx]
		}
	}
	return segs
}

// Generated reports whether the document carried the separator, meaning
// it came from a generatedSchema query rather than a plain schema query.
func (s Segments) Generated() bool {
	return s.split
}
