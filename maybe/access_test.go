package maybe

import (
	"testing"
)

type host struct {
	Addr  string
	Ports []int
	notes string
}

func TestGet(t *testing.T) {
	h := &host{Addr: "10.0.0.1", Ports: []int{22, 443}, notes: "x"}
	data := map[string]any{
		"hosts": []any{h, nil},
		"count": 2,
		"name":  "lab",
	}

	tests := []struct {
		name string
		v    any
		keys []any
		want any
	}{
		{"map key", data, []any{"count"}, 2},
		{"missing key", data, []any{"nope"}, Absent},
		{"wrong key type", data, []any{1}, Absent},
		{"slice index", []int{1, 2, 3}, []any{1}, 2},
		{"negative index", []int{1, 2, 3}, []any{-1}, 3},
		{"out of range", []int{1, 2, 3}, []any{3}, Absent},
		{"string index", "héllo", []any{1}, "é"},
		{"struct field through pointer", h, []any{"Addr"}, "10.0.0.1"},
		{"unexported field", h, []any{"notes"}, Absent},
		{"nested", data, []any{"hosts", 0, "Ports", -1}, 443},
		{"nil element", data, []any{"hosts", 1, "Addr"}, Absent},
		{"absent root", Absent, []any{"a", 0}, Absent},
		{"nil root", nil, []any{"a"}, Absent},
		{"scalar", 5, []any{"a"}, Absent},
		{"no keys", data["name"], nil, "lab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetIn(tt.v, tt.keys...)
			if !Equal(got, tt.want) && !(got == Absent && tt.want == Absent) {
				t.Errorf("GetIn(%v, %v) = %v, want %v", tt.v, tt.keys, got, tt.want)
			}
		})
	}
}

func TestGetTypedMapKey(t *testing.T) {
	type key string
	m := map[key]int{"a": 1}
	if got := Get(m, "a"); got != 1 {
		t.Errorf("Get with convertible key = %v", got)
	}
	if got := Get(map[int]string{1: "x"}, 1); got != "x" {
		t.Errorf("Get int key = %v", got)
	}
}

func TestKeyAndPathStages(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": []any{1, 2, 3}}}
	if got := Pipe(data, Key("a"), Key("b"), Key(-1)); got != 3 {
		t.Errorf("Key stages = %v, want 3", got)
	}
	if got := Pipe(data, Path("a", "b", 0)); got != 1 {
		t.Errorf("Path stage = %v, want 1", got)
	}
	if got := Pipe(data, Path("a", "z"), Key("never")); got != Absent {
		t.Errorf("missing path = %v, want Absent", got)
	}
}

func TestGetUnhashableKey(t *testing.T) {
	m := map[any]any{"a": 1}
	if got := Get(m, []int{1}); got != Absent {
		t.Errorf("Get with a slice key = %v, want Absent", got)
	}
	if got := Get(m, map[string]int{}); got != Absent {
		t.Errorf("Get with a map key = %v, want Absent", got)
	}
	if got := Get(m, "a"); got != 1 {
		t.Errorf("Get(a) = %v, want 1", got)
	}
}
