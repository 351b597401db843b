package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValMapRec(t *testing.T) {
	in := map[string]any{
		"name": "x",
		"tags": []any{"a", "b"},
		"sub":  map[string]any{"k": "v"},
		"n":    1,
	}
	upper := func(v any) any {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s)
		}
		return v
	}
	got := ValMapRec(upper, in)
	assert.Equal(t, map[string]any{
		"name": "X",
		"tags": []any{"A", "B"},
		"sub":  map[string]any{"k": "V"},
		"n":    1,
	}, got)
	assert.Equal(t, "x", in["name"])
}

func TestFlatten(t *testing.T) {
	got := Flatten(map[string]any{
		"b": 2,
		"a": map[string]any{"y": 1, "x": map[string]any{"z": true}},
	})
	assert.Equal(t, [][]any{
		{"a", "x", "z", true},
		{"a", "y", 1},
		{"b", 2},
	}, got)
	assert.Equal(t, [][]any{{5}}, Flatten(5))
}

func TestMatchD(t *testing.T) {
	match := map[string]string{"a": `h(?P<v0>.*)`, "b": `(?P<v1>.*)d`}

	got, ok := MatchD(match, map[string]string{"a": "hello", "b": "world"}).Get()
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"v0": "ello", "v1": "worl"}, got)

	assert.True(t, MatchD(match, map[string]string{"a": "hello"}).IsNone(), "missing key")
	assert.True(t, MatchDWith(map[string]string{"a": `ckjv(?P<v0>.*)`})(map[string]string{"a": "hello"}).IsNone(), "no match")
	assert.True(t, MatchD(map[string]string{"a": `(`}, map[string]string{"a": "hello"}).IsNone(), "bad regex")
}
