package eventstream

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/live/pkg/domain"
	"gopkg.in/yaml.v3"
)

// MaxLineSize bounds a single NDJSON event.
const MaxLineSize = 4 * 1024 * 1024

// Reader yields events until io.EOF.
type Reader interface {
	Next() (domain.Event, error)
}

// JSONReader reads newline-delimited JSON envelopes. Blank lines are skipped.
type JSONReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewJSONReader creates an NDJSON reader.
func NewJSONReader(r io.Reader) *JSONReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &JSONReader{scanner: s}
}

// Next returns the next event. Decode errors mention the line number and
// leave the reader positioned on the following line.
func (r *JSONReader) Next() (domain.Event, error) {
	for r.scanner.Scan() {
		r.line++
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		ev, err := DecodeJSON(line)
		if err != nil {
			return ev, fmt.Errorf("line %d: %w", r.line, err)
		}
		return ev, nil
	}
	if err := r.scanner.Err(); err != nil {
		return domain.Event{}, fmt.Errorf("%w: failed to read events: %w", ErrFatal, err)
	}
	return domain.Event{}, io.EOF
}

// YAMLReader reads a multi-document YAML stream, one event per document.
type YAMLReader struct {
	decoder *yaml.Decoder
	doc     int
}

// NewYAMLReader creates a YAML stream reader.
func NewYAMLReader(r io.Reader) *YAMLReader {
	return &YAMLReader{decoder: yaml.NewDecoder(r)}
}

// Next returns the event in the next non-empty document.
func (r *YAMLReader) Next() (domain.Event, error) {
	for {
		var raw map[string]any
		err := r.decoder.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return domain.Event{}, io.EOF
		}
		r.doc++
		if err != nil {
			// The YAML decoder cannot resynchronize after a syntax error.
			return domain.Event{}, fmt.Errorf("document %d: %w: %w", r.doc, ErrFatal, err)
		}
		if raw == nil {
			continue
		}
		ev, err := Decode(raw)
		if err != nil {
			return ev, fmt.Errorf("document %d: %w", r.doc, err)
		}
		return ev, nil
	}
}

// ErrFatal marks read errors after which the stream cannot continue.
var ErrFatal = errors.New("unrecoverable stream error")
