package gotemplate

import (
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func registerDefaultFilters() {
	defaults := map[string]pongo2.FilterFunction{
		"trim":      filterTrim,
		"percent":   filterPercent,
		"shortid":   filterShortID,
		"inputtype": filterInputType,
	}
	for name, fn := range defaults {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterPercent renders a width share such as 66.66 as "66.66%".
func filterPercent(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strconv.FormatFloat(in.Float(), 'f', -1, 64) + "%"), nil
}

// filterShortID abbreviates an id to its first and last n characters; n
// defaults to 6.
func filterShortID(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	n := 6
	if param != nil && !param.IsNil() && param.Integer() > 0 {
		n = param.Integer()
	}
	return pongo2.AsValue(model.ShortID(in.String(), n)), nil
}

// filterInputType maps a field type to the HTML control used to edit it:
// "select" or an input type.
func filterInputType(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	switch model.FieldType(in.String()) {
	case model.FieldTypeSelect:
		return pongo2.AsValue("select"), nil
	case model.FieldTypeNumber:
		return pongo2.AsValue("number"), nil
	case model.FieldTypeEmail:
		return pongo2.AsValue("email"), nil
	case model.FieldTypeDate:
		return pongo2.AsValue("date"), nil
	default:
		return pongo2.AsValue("text"), nil
	}
}
