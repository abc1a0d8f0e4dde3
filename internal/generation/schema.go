package generation

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const cardSchemaURL = "flashcard.schema.json"

// cardSchemaJSON describes one entry of the array a model is asked to return.
// Extra properties are allowed; only question and answer are read.
const cardSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["question", "answer"],
  "properties": {
    "question": {"type": "string", "minLength": 1},
    "answer": {"type": "string", "minLength": 1}
  }
}`

var cardSchema = mustCompileCardSchema()

func mustCompileCardSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(cardSchemaURL, strings.NewReader(cardSchemaJSON)); err != nil {
		// ALLOW-PANIC: the schema is a compile-time constant
		panic("generation: add card schema: " + err.Error())
	}
	schema, err := compiler.Compile(cardSchemaURL)
	if err != nil {
		// ALLOW-PANIC: the schema is a compile-time constant
		panic("generation: compile card schema: " + err.Error())
	}
	return schema
}
