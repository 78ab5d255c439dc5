package parse

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fieldsSchemaJSON constrains an extracted-fields record before it is allowed
// to seed a load row: ISO dates, plausible money, two-letter states, a sane
// BOL number shape.
const fieldsSchemaJSON = `{
  "type": "object",
  "properties": {
    "gross_pay":     {"type": ["number", "null"], "minimum": 100, "maximum": 100000},
    "miles":         {"type": ["integer", "null"], "minimum": 0},
    "pickup_date":   {"type": ["string", "null"], "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
    "delivery_date": {"type": ["string", "null"], "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
    "origin":        {"type": ["string", "null"]},
    "destination":   {"type": ["string", "null"]},
    "pickup_state":  {"type": ["string", "null"], "pattern": "^[A-Z]{2}$"},
    "drop_state":    {"type": ["string", "null"], "pattern": "^[A-Z]{2}$"},
    "status":        {"type": "string", "enum": ["planned", "in_transit", "completed", "canceled"]},
    "bol_number":    {"type": ["string", "null"], "pattern": "^[A-Z0-9-]{5,}$"},
    "raw_preview":   {"type": "string"}
  },
  "required": ["status"],
  "additionalProperties": false
}`

var fieldsSchema = jsonschema.MustCompileString("fields.schema.json", fieldsSchemaJSON)

// Validate checks a Fields record against the schema. Parsers uphold these
// invariants by construction; this guards records that passed through caller
// overrides before they reach storage.
func Validate(f Fields) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal fields: %w", err)
	}
	if err := fieldsSchema.Validate(v); err != nil {
		return fmt.Errorf("fields schema: %w", err)
	}
	return nil
}
