package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/live/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestResult_Int(t *testing.T) {
	r := domain.Result{
		"int":    2,
		"float":  float64(3),
		"number": json.Number("4"),
		"text":   " 5 ",
		"frac":   1.5,
		"bad":    "x",
	}

	assert.Equal(t, 2, r.Int("int", -1))
	assert.Equal(t, 3, r.Int("float", -1))
	assert.Equal(t, 4, r.Int("number", -1))
	assert.Equal(t, 5, r.Int("text", -1))
	assert.Equal(t, -1, r.Int("frac", -1))
	assert.Equal(t, -1, r.Int("bad", -1))
	assert.Equal(t, -1, r.Int("missing", -1))
}

func TestResult_Bool(t *testing.T) {
	r := domain.Result{
		"a": true, "b": false, "c": "true", "d": 1, "e": "yes",
		"empty": "", "list": []any{1}, "nolist": []any{}, "map": map[string]any{"k": 1}, "nomap": map[string]any{},
		"zero": json.Number("0"),
	}

	assert.True(t, r.Bool("a"))
	assert.False(t, r.Bool("b"))
	assert.True(t, r.Bool("c"))
	assert.True(t, r.Bool("d"))
	assert.True(t, r.Bool("e"), "non-empty strings are truthy")
	assert.False(t, r.Bool("empty"))
	assert.True(t, r.Bool("list"))
	assert.False(t, r.Bool("nolist"))
	assert.True(t, r.Bool("map"))
	assert.False(t, r.Bool("nomap"))
	assert.False(t, r.Bool("zero"))
	assert.False(t, r.Bool("missing"))
}

func TestResult_String(t *testing.T) {
	r := domain.Result{
		"s":   "hello",
		"n":   nil,
		"m":   map[string]any{"k": "v"},
		"l":   []any{1, "two"},
		"num": 42,
	}

	assert.Equal(t, "hello", r.String("s"))
	assert.Equal(t, "", r.String("n"))
	assert.Equal(t, `{"k":"v"}`, r.String("m"))
	assert.Equal(t, `[1,"two"]`, r.String("l"))
	assert.Equal(t, "42", r.String("num"))
	assert.Equal(t, "", r.String("missing"))
}

func TestResult_CloneIsDeep(t *testing.T) {
	orig := domain.Result{
		"nested": map[string]any{"inner": "x"},
		"list":   []any{map[string]any{"k": 1}},
	}

	c := orig.Clone()
	delete(c, "list")
	c["nested"].(map[string]any)["inner"] = "changed"

	assert.Contains(t, orig, "list")
	assert.Equal(t, "x", orig["nested"].(map[string]any)["inner"])
	assert.NotNil(t, domain.Result(nil).Clone())
}

func TestActionSets(t *testing.T) {
	assert.True(t, domain.IsFreeForm("shell"))
	assert.True(t, domain.IsFreeForm("script"))
	assert.False(t, domain.IsFreeForm("win_shell"))
	assert.True(t, domain.IsNoJSON("win_shell"))
	assert.False(t, domain.IsNoJSON("script"))
}

func TestPlay_IsFree(t *testing.T) {
	var nilPlay *domain.Play
	assert.False(t, nilPlay.IsFree())
	assert.False(t, (&domain.Play{Strategy: "linear"}).IsFree())
	assert.True(t, (&domain.Play{Strategy: domain.StrategyFree}).IsFree())
}
