package rec2pdf

import (
	"encoding/json"
	"strconv"
)

// Flatten converts a possibly nested record into a flat mapping from dotted
// key path to string value. Nested object keys are joined with "."; every
// leaf scalar appears exactly once under the concatenation of its path.
// Deserialized input is a tree, so the traversal is cycle-free.
func Flatten(rec Record) map[string]string {
	flat := make(map[string]string, rec.Len())
	for _, key := range rec.keys {
		flattenValue(flat, key, rec.fields[key])
	}
	return flat
}

// flattenValue walks one value depth-first, emitting leaves into flat.
func flattenValue(flat map[string]string, path string, value any) {
	switch v := value.(type) {
	case Record:
		for _, key := range v.keys {
			flattenValue(flat, path+"."+key, v.fields[key])
		}
	case map[string]any:
		for key, child := range v {
			flattenValue(flat, path+"."+key, child)
		}
	default:
		flat[path] = stringifyScalar(value)
	}
}

// stringifyScalar renders a scalar with the fixed textual policy:
// nil → "", bool → "true"/"false", numbers keep their literal text where the
// decoder preserved it and otherwise use the shortest round-trip form.
// The policy is deterministic so repeated runs produce identical output.
func stringifyScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number: // goccy/go-json aliases Number to this type
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
