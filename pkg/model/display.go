package model

import (
	"fmt"
	"strings"
)

var respondentKeys = []string{"name", "fullName", "studentName", "firstName"}

// ShortID abbreviates long identifiers for list views as first n runes,
// "...", last n runes. Ids shorter than 2n are returned untouched.
func ShortID(id string, n int) string {
	if id == "" || n <= 0 {
		return id
	}
	runes := []rune(id)
	if len(runes) <= 2*n {
		return id
	}
	return string(runes[:n]) + "..." + string(runes[len(runes)-n:])
}

// RespondentName picks a display name for a response: the first non-empty
// well-known name key, then the first answered field in form order, then
// the response id.
func RespondentName(form Form, resp Response) string {
	for _, key := range respondentKeys {
		if value := displayValue(resp.Data[key]); value != "" {
			return value
		}
	}
	for _, ref := range form.Fields() {
		if value := displayValue(resp.Data[ref.Field.ID]); value != "" {
			return value
		}
	}
	return resp.ResponseID
}

func displayValue(value any) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(value))
}
