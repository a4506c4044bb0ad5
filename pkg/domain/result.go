package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is everything an executed action reported for one host.
// Values are whatever the engine decoded: strings, numbers, bools,
// nested maps and slices.
type Result map[string]any

// Has reports whether key is present, even with a nil value.
func (r Result) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Bool reports whether key holds a truthy value: true, a non-zero number or
// a non-empty string, list or map. Missing keys are false.
func (r Result) Bool(key string) bool {
	return truthy(r[key])
}

// String returns the display text of key. Missing or nil values are "".
// Maps and slices are rendered as compact JSON.
func (r Result) String(key string) string {
	return Text(r[key])
}

// Int returns key as an integer, or def if missing or not numeric.
func (r Result) Int(key string, def int) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// Clone returns a deep copy of r so callers can strip keys freely.
func (r Result) Clone() Result {
	if r == nil {
		return Result{}
	}
	return Result(cloneMap(r))
}

// Text renders an arbitrary result value for display.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case map[string]any, Result, []any, []string:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	case Result:
		return len(val) > 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	default:
		return false
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case Result:
		return Result(cloneMap(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return val
	}
}
