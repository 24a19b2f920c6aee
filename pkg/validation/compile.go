package validation

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Ruleset is the compiled validation schema of a form. Rules are kept in
// document order.
type Ruleset struct {
	title   string
	rules   []Rule
	schemas map[string]*openapi3.Schema
}

// Compile derives one rule per field of form. It panics when a field carries
// a type outside model.FieldTypes; loaders reject those through
// model.CheckStructure first.
func Compile(form model.Form) Ruleset {
	refs := form.Fields()
	set := Ruleset{
		title:   form.FormLabel,
		rules:   make([]Rule, 0, len(refs)),
		schemas: make(map[string]*openapi3.Schema, len(refs)),
	}
	for _, ref := range refs {
		rule := Rule{
			FieldID:  ref.Field.ID,
			Kind:     KindFor(ref.Field.Type),
			Required: ref.Field.Required,
		}
		set.rules = append(set.rules, rule)
		set.schemas[rule.FieldID] = fieldSchema(rule, ref.Field)
	}
	return set
}

// Rules returns a copy of the compiled rules in document order.
func (r Ruleset) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Len reports the number of compiled rules.
func (r Ruleset) Len() int {
	return len(r.rules)
}

// Rule looks up the rule for a field id.
func (r Ruleset) Rule(fieldID string) (Rule, bool) {
	for _, rule := range r.rules {
		if rule.FieldID == fieldID {
			return rule, true
		}
	}
	return Rule{}, false
}

func fieldSchema(rule Rule, field model.Field) *openapi3.Schema {
	var schema *openapi3.Schema
	switch rule.Kind {
	case KindEmail:
		schema = openapi3.NewStringSchema().WithPattern(EmailPattern)
	case KindNumber:
		schema = openapi3.NewFloat64Schema()
	default:
		schema = openapi3.NewStringSchema()
		if rule.Required {
			schema = schema.WithMinLength(1)
		}
	}
	if !rule.Required {
		schema = schema.WithNullable()
	}
	schema.Title = field.Label
	return schema
}
