package validation

import (
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Kind is the validation rule family of a field.
type Kind string

const (
	KindEmail  Kind = "email"
	KindNumber Kind = "number"
	KindString Kind = "string"
)

// Rule is the compiled constraint for a single field.
type Rule struct {
	FieldID  string
	Kind     Kind
	Required bool
}

// KindFor maps a field type onto its rule family.
func KindFor(t model.FieldType) Kind {
	switch t {
	case model.FieldTypeEmail:
		return KindEmail
	case model.FieldTypeNumber:
		return KindNumber
	case model.FieldTypeText, model.FieldTypeDate, model.FieldTypeSelect:
		return KindString
	}
	panic(fmt.Sprintf("validation: no rule kind for field type %q", t))
}

const (
	MessageRequired = "This field is required"
	MessageEmail    = "Invalid email format"
	MessageNumber   = "Value must be a valid number"
	MessageText     = "Value must be text"
)

// EmailPattern is the address shape accepted for email fields.
const EmailPattern = `^[A-Za-z0-9._%+'-]+@([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`
