package validation

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPISchema exports the ruleset as an OpenAPI object schema. Required
// fields are listed in document order.
func (r Ruleset) OpenAPISchema() *openapi3.Schema {
	object := openapi3.NewObjectSchema()
	object.Title = r.title
	object.Properties = make(openapi3.Schemas, len(r.rules))
	var required []string
	for _, rule := range r.rules {
		object.Properties[rule.FieldID] = openapi3.NewSchemaRef("", r.schemas[rule.FieldID])
		if rule.Required {
			required = append(required, rule.FieldID)
		}
	}
	if len(required) > 0 {
		object.Required = required
	}
	return object
}

// MarshalOpenAPI renders the exported schema as indented JSON.
func (r Ruleset) MarshalOpenAPI() ([]byte, error) {
	return json.MarshalIndent(r.OpenAPISchema(), "", "  ")
}
