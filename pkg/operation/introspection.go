package operation

const (
	schemaQueryText          = "{ getGQLSchema { schema } }"
	generatedSchemaQueryText = "{ getGQLSchema { generatedSchema } }"
)

// NewSchemaQuery builds the admin introspection request. When generated
// is true the server returns the combined generatedSchema document with
// its generated artifact segments; otherwise it returns the raw input
// schema. There is no name to validate and no argument or return-field
// input: the wire text is one of two fixed templates.
func NewSchemaQuery(generated bool) *Operation {
	text := schemaQueryText
	if generated {
		text = generatedSchemaQueryText
	}
	return &Operation{kind: KindSchema, text: text}
}
