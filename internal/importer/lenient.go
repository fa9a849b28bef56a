package importer

import (
	"bytes"
	"encoding/json"
	"strings"
)

type splitMode int

const (
	splitNone   splitMode = iota // a lone string is a one-element list
	splitFields                  // a lone string splits on whitespace ("#a #b")
	splitCommas                  // a lone string splits on commas
)

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// textOf reads any JSON value as display text. Strings are returned as-is,
// numbers and booleans in their literal form, lists joined with "; ", and
// objects as compact JSON.
func textOf(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if t := textOf(item); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, "; ")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return buf.String()
	}
	return strings.TrimSpace(string(raw))
}

// listOf reads a JSON list of scalars. A JSON-encoded list inside a string is
// decoded; any other lone string is split according to mode.
func listOf(raw json.RawMessage, mode splitMode) []string {
	if isNull(raw) {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		s := textOf(raw)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") {
			if err := json.Unmarshal([]byte(s), &list); err == nil {
				return listOf(json.RawMessage(s), mode)
			}
		}
		switch mode {
		case splitFields:
			return strings.Fields(s)
		case splitCommas:
			var out []string
			for _, part := range strings.Split(s, ",") {
				if p := strings.TrimSpace(part); p != "" {
					out = append(out, p)
				}
			}
			return out
		default:
			return []string{s}
		}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if t := textOf(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// objectOf reads a JSON object, or a string holding one. Anything else is nil.
func objectOf(raw json.RawMessage) map[string]json.RawMessage {
	if isNull(raw) {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "{") {
			if err := json.Unmarshal([]byte(s), &obj); err == nil {
				return obj
			}
		}
	}
	return nil
}

// elementsOf reads a JSON list, or a string holding one.
func elementsOf(raw json.RawMessage) ([]json.RawMessage, bool) {
	if isNull(raw) {
		return nil, false
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &list); err == nil {
			return list, true
		}
	}
	return nil, false
}

// objectsOf reads a list of objects, skipping elements that are not objects.
func objectsOf(raw json.RawMessage) []map[string]json.RawMessage {
	list, _ := elementsOf(raw)
	out := make([]map[string]json.RawMessage, 0, len(list))
	for _, item := range list {
		if obj := objectOf(item); obj != nil {
			out = append(out, obj)
		}
	}
	return out
}
