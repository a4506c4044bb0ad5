// Package diff renders result diff payloads as unified diffs.
package diff

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/ports"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultContext is the number of context lines around each hunk.
const DefaultContext = 3

const noNewline = "\n\\ No newline at end of file\n"

// Unified is the default ports.DiffRenderer.
type Unified struct {
	Context int
}

var _ ports.DiffRenderer = (*Unified)(nil)

// New returns a renderer with DefaultContext lines of context.
func New() *Unified {
	return &Unified{Context: DefaultContext}
}

// Render accepts a single diff mapping or a list of them.
func (u *Unified) Render(diff any) string {
	var b strings.Builder
	switch d := diff.(type) {
	case []any:
		for _, item := range d {
			if m, ok := item.(map[string]any); ok {
				u.renderOne(&b, m)
			}
		}
	case map[string]any:
		u.renderOne(&b, d)
	case domain.Result:
		u.renderOne(&b, d)
	}
	return b.String()
}

func (u *Unified) renderOne(b *strings.Builder, d map[string]any) {
	r := domain.Result(d)

	if r.Bool("dst_binary") {
		b.WriteString("diff skipped: destination file appears to be binary\n")
	}
	if r.Bool("src_binary") {
		b.WriteString("diff skipped: source file appears to be binary\n")
	}
	if size := r.Int("dst_larger", 0); size > 0 {
		fmt.Fprintf(b, "diff skipped: destination file size is greater than %d\n", size)
	}
	if size := r.Int("src_larger", 0); size > 0 {
		fmt.Fprintf(b, "diff skipped: source file size is greater than %d\n", size)
	}

	if r.Has("before") && r.Has("after") {
		beforeHeader := "before"
		if h := r.String("before_header"); h != "" {
			beforeHeader = "before: " + h
		}
		afterHeader := "after"
		if h := r.String("after_header"); h != "" {
			afterHeader = "after: " + h
		}

		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        splitLines(side(r["before"])),
			B:        splitLines(side(r["after"])),
			FromFile: beforeHeader,
			ToFile:   afterHeader,
			Context:  u.Context,
		})
		if err == nil && text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}

	if prepared := r.String("prepared"); prepared != "" {
		b.WriteString(prepared)
	}
}

// side formats structured before/after values as indented JSON documents.
func side(v any) string {
	switch val := v.(type) {
	case map[string]any, []any:
		out, err := json.MarshalIndent(val, "", "    ")
		if err != nil {
			return domain.Text(val)
		}
		return string(out) + "\n"
	default:
		return domain.Text(val)
	}
}

// splitLines keeps line terminators and marks a missing final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if last := lines[len(lines)-1]; !strings.HasSuffix(last, "\n") {
		lines[len(lines)-1] = last + noNewline
	}
	return lines
}
