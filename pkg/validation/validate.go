package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// SubmissionError lists the failed rules of a submission, keyed by field id.
type SubmissionError struct {
	Fields map[string][]string
}

func (e *SubmissionError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation: submission rejected"
	}
	ids := make([]string, 0, len(e.Fields))
	for id := range e.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s: %s", id, strings.Join(e.Fields[id], ", ")))
	}
	return "validation: submission rejected: " + strings.Join(parts, "; ")
}

// Message returns the first message recorded for fieldID.
func (e *SubmissionError) Message(fieldID string) string {
	if e == nil {
		return ""
	}
	if msgs := e.Fields[fieldID]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func (e *SubmissionError) add(fieldID, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[fieldID] = append(e.Fields[fieldID], message)
}

// Validate checks values against every rule and returns the parsed data.
// Numbers are coerced to float64, keys without a rule are dropped and absent
// optional fields are left out. On failure the returned error is a
// *SubmissionError and the map is nil.
func (r Ruleset) Validate(values map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(r.rules))
	failed := &SubmissionError{}
	for _, rule := range r.rules {
		raw, present := values[rule.FieldID]
		parsed, keep, msg := r.check(rule, raw, present)
		if msg != "" {
			failed.add(rule.FieldID, msg)
			continue
		}
		if keep {
			out[rule.FieldID] = parsed
		}
	}
	if len(failed.Fields) > 0 {
		return nil, failed
	}
	return out, nil
}

// ValidateField checks a single value against the rule of fieldID. Unknown
// field ids pass.
func (r Ruleset) ValidateField(fieldID string, value any) (any, string) {
	rule, ok := r.Rule(fieldID)
	if !ok {
		return value, ""
	}
	parsed, _, msg := r.check(rule, value, true)
	return parsed, msg
}

func (r Ruleset) check(rule Rule, raw any, present bool) (any, bool, string) {
	if !present || raw == nil {
		if rule.Required {
			return nil, false, MessageRequired
		}
		return nil, present, ""
	}

	schema := r.schemas[rule.FieldID]
	switch rule.Kind {
	case KindNumber:
		n, empty, ok := coerceNumber(raw)
		if empty {
			if rule.Required {
				return nil, false, MessageRequired
			}
			return nil, true, ""
		}
		if !ok || schema.VisitJSON(n) != nil {
			return nil, false, MessageNumber
		}
		return n, true, ""
	case KindEmail:
		s, ok := raw.(string)
		if !ok {
			return nil, false, MessageEmail
		}
		if s == "" {
			if rule.Required {
				return nil, false, MessageRequired
			}
			return s, true, ""
		}
		if schema.VisitJSON(s) != nil {
			return nil, false, MessageEmail
		}
		return s, true, ""
	default:
		s, ok := raw.(string)
		if !ok {
			return nil, false, MessageText
		}
		if schema.VisitJSON(s) != nil {
			return nil, false, MessageRequired
		}
		return s, true, ""
	}
}

// coerceNumber turns form input into a float64. Empty strings report empty.
func coerceNumber(raw any) (float64, bool, bool) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false, false
		}
		n = parsed
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, true, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false, false
		}
		n = parsed
	default:
		return 0, false, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false, false
	}
	return n, false, true
}
