package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	got := Merge(map[string]int{"a": 1, "b": 1}, map[string]int{"b": 2}, nil)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}

func TestMergeWithArgumentWins(t *testing.T) {
	merge := MergeWith(map[string]int{"b": 2}, map[string]int{"c": 3, "a": 0})
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, merge(map[string]int{"a": 1}))
}

func TestCreateKey(t *testing.T) {
	create := CreateKey("a", func(d map[string]int) int { return d["b"] + 10 })
	assert.Equal(t, map[string]int{"a": 12, "b": 2}, create(map[string]int{"b": 2}))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, create(map[string]int{"a": 1, "b": 2}))
}

func TestUpdateKey(t *testing.T) {
	update := UpdateKey("a", func(d map[string]int) int { return d["b"] + 10 })
	assert.Equal(t, map[string]int{"a": 12, "b": 2}, update(map[string]int{"b": 2}))
	assert.Equal(t, map[string]int{"a": 12, "b": 2}, update(map[string]int{"a": 1, "b": 2}))
}

func TestUpdateKeyV(t *testing.T) {
	add5 := UpdateKeyV("a", func(v int) int { return v + 5 }, 0)
	assert.Equal(t, map[string]int{"a": 5, "b": 2}, add5(map[string]int{"b": 2}))
	assert.Equal(t, map[string]int{"a": 9}, add5(map[string]int{"a": 4}))
}

func TestOnlyIfKey(t *testing.T) {
	set := OnlyIfKey("flag", SetKey("seen", 1))
	assert.Equal(t, map[string]int{"flag": 0, "seen": 1}, set(map[string]int{"flag": 0}))
	assert.Equal(t, map[string]int{}, set(map[string]int{}))
}

func TestUpdateIfKeyExists(t *testing.T) {
	update := UpdateIfKeyExists("a", func(d map[string]int) int { return d["a"] + 5 })
	assert.Equal(t, map[string]int{}, update(map[string]int{}))
	assert.Equal(t, map[string]int{"a": 9}, update(map[string]int{"a": 4}))
}

func TestDropKeys(t *testing.T) {
	assert.Equal(t, map[string]int{}, DropKey[string, int]("b")(map[string]int{"b": 2}))
	assert.Equal(t, map[string]int{"a": 2}, DropKey[string, int]("b")(map[string]int{"a": 2}))
	assert.Equal(t, map[string]int{"a": 2}, DropKeys[string, int]("b", "c")(map[string]int{"a": 2, "b": 2}))
	assert.Equal(t, map[string]int{}, DropKeys[string, int]("a")(nil))
}

func TestMergeKeys(t *testing.T) {
	merge := MergeKeys([]string{"a", "b"}, "c", func(d map[string]int) int { return d["a"] + d["b"] })
	assert.Equal(t, map[string]int{"c": 3}, merge(map[string]int{"a": 1, "b": 2}))
}

func TestReplaceKey(t *testing.T) {
	replace := ReplaceKey("a", "c", func(d map[string]int) int { return d["a"] + 2 })
	assert.Equal(t, map[string]int{"c": 3}, replace(map[string]int{"a": 1}))
}

func TestTransformsDoNotMutate(t *testing.T) {
	in := map[string]int{"a": 1}
	Chain(SetKey("b", 2), DropKey[string, int]("a"), UpdateKeyV("a", func(v int) int { return v + 1 }, 0))(in)
	assert.Equal(t, map[string]int{"a": 1}, in)
}

func TestChain(t *testing.T) {
	got := Chain(SetKey("b", 2), DropKey[string, int]("a"))(map[string]int{"a": 1})
	assert.Equal(t, map[string]int{"b": 2}, got)
}
