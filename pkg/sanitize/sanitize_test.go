package sanitize

import (
	"testing"

	"github.com/aretw0/live/internal/testutils"
	"github.com/aretw0/live/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestStripInternalKeys(t *testing.T) {
	s := New(testutils.NewDisplay(0))
	in := domain.Result{
		"_ansible_no_log": false,
		"stdout":          "x",
		"nested": map[string]any{
			"_ansible_parsed": true,
			"keep":            1,
		},
	}

	out := s.StripInternalKeys(in)

	assert.Equal(t, domain.Result{"stdout": "x", "nested": map[string]any{"keep": 1}}, out)
	assert.Contains(t, in, "_ansible_no_log", "input is not modified")
	assert.Contains(t, in["nested"], "_ansible_parsed")
}

func TestStripInternalKeys_CustomPrefix(t *testing.T) {
	s := New(testutils.NewDisplay(0), WithInternalPrefix("__"))
	out := s.StripInternalKeys(domain.Result{"__x": 1, "_ansible_y": 2})
	assert.Equal(t, domain.Result{"_ansible_y": 2}, out)
}

func TestCleanResults_DebugMsg(t *testing.T) {
	s := New(testutils.NewDisplay(0))
	in := domain.Result{
		"msg":              "hi",
		"changed":          false,
		"warnings":         []any{"w"},
		"_ansible_verbose": true,
		"other":            "drop",
	}

	out := s.CleanResults(in, domain.ActionDebug)

	assert.Equal(t, domain.Result{"msg": "hi", "warnings": []any{"w"}, "_ansible_verbose": true}, out)
	assert.Len(t, in, 5)
}

func TestCleanResults_DebugVar(t *testing.T) {
	s := New(testutils.NewDisplay(0))
	in := domain.Result{"my_var": "value", "changed": false, "failed": false, "skip_reason": "x", "invocation": map[string]any{}}

	out := s.CleanResults(in, domain.ActionDebug)

	assert.Equal(t, domain.Result{"my_var": "value"}, out)
}

func TestCleanResults_OtherActionsUntouched(t *testing.T) {
	s := New(testutils.NewDisplay(0))
	in := domain.Result{"changed": true, "stdout": "x"}
	assert.Equal(t, in, s.CleanResults(in, "copy"))
}

func TestHandleWarnings(t *testing.T) {
	d := testutils.NewDisplay(0)
	s := New(d)
	in := domain.Result{
		"warnings": []any{"disk almost full"},
		"deprecations": []any{
			map[string]any{"msg": "old option", "version": "2.9"},
			"plain",
		},
		"rc": 0,
	}

	out := s.HandleWarnings(in)

	assert.Equal(t, domain.Result{"rc": 0}, out)
	assert.Equal(t, []testutils.Line{
		{Text: "[WARNING]: disk almost full", Color: domain.ColorWarn},
		{Text: "[DEPRECATION WARNING]: old option. This feature will be removed in version 2.9.", Color: domain.ColorDeprecate},
		{Text: "[DEPRECATION WARNING]: plain.", Color: domain.ColorDeprecate},
	}, d.Lines)
}

func TestHandleException(t *testing.T) {
	trace := "Traceback (most recent call last):\n  File \"x\"\nValueError: boom\n"

	t.Run("short", func(t *testing.T) {
		d := testutils.NewDisplay(0)
		out := New(d).HandleException(domain.Result{"exception": trace})

		assert.Contains(t, out, "exception")
		assert.Len(t, d.Lines, 1)
		assert.Equal(t, domain.ColorError, d.Lines[0].Color)
		assert.Contains(t, d.Lines[0].Text, "use -vvv. The error was: ValueError: boom")
	})

	t.Run("full", func(t *testing.T) {
		d := testutils.NewDisplay(3)
		out := New(d).HandleException(domain.Result{"exception": trace})

		assert.NotContains(t, out, "exception")
		assert.Equal(t, "The full traceback is:\n"+trace, d.Lines[0].Text)
	})

	t.Run("absent", func(t *testing.T) {
		d := testutils.NewDisplay(0)
		New(d).HandleException(domain.Result{"rc": 1})
		assert.Empty(t, d.Lines)
	})
}
