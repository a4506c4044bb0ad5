package eventstream

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/live/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

var knownEvents = map[domain.EventType]bool{
	domain.EventPlayStart:         true,
	domain.EventTaskStart:         true,
	domain.EventRunnerOk:          true,
	domain.EventRunnerFailed:      true,
	domain.EventRunnerSkipped:     true,
	domain.EventRunnerUnreachable: true,
	domain.EventItemOk:            true,
	domain.EventItemFailed:        true,
	domain.EventItemSkipped:       true,
	domain.EventFileDiff:          true,
}

// Known reports whether t is a supported event type.
func Known(t domain.EventType) bool {
	return knownEvents[t]
}

// Decode converts a generic envelope (as produced by a JSON or YAML
// decoder) into a typed event.
func Decode(raw map[string]any) (domain.Event, error) {
	var ev domain.Event
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &ev,
		TagName: "mapstructure",
	})
	if err != nil {
		return ev, fmt.Errorf("failed to build event decoder: %w", err)
	}
	if err := dec.Decode(normalizeMap(raw)); err != nil {
		return ev, fmt.Errorf("failed to decode event: %w", err)
	}
	if !Known(ev.Type) {
		return ev, fmt.Errorf("%w: %q", domain.ErrUnknownEvent, ev.Type)
	}
	return ev, nil
}

// normalizeMap rewrites the map[any]any values YAML produces for mappings
// with non-string keys into map[string]any, at any depth.
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return normalizeMap(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return val
	}
}

// DecodeJSON decodes a single JSON envelope. Numbers are kept as
// json.Number so integer fields like rc survive unchanged.
func DecodeJSON(data []byte) (domain.Event, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return domain.Event{}, fmt.Errorf("invalid event json: %w", err)
	}
	return Decode(raw)
}

// EncodeJSON serializes ev as a single JSON line (without trailing newline).
func EncodeJSON(ev domain.Event) ([]byte, error) {
	if !Known(ev.Type) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEvent, ev.Type)
	}
	return json.Marshal(ev)
}
