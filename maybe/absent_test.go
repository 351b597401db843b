package maybe

import (
	"encoding/json"
	"testing"
)

func TestIsAbsent(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilFunc func()
	var nilChan chan int
	var nilErr error
	n := 0

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"sentinel", Absent, true},
		{"nil", nil, true},
		{"nil error interface", nilErr, true},
		{"typed nil pointer", nilPtr, true},
		{"nil map", nilMap, true},
		{"nil func", nilFunc, true},
		{"nil chan", nilChan, true},
		{"none option", None[int](), true},
		{"nil option pointer", (*Option[int])(nil), true},
		{"none option pointer", ptrTo(None[int]()), true},
		{"some option pointer", ptrTo(Some(1)), false},
		{"some option", Some(0), false},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"empty slice", []int{}, false},
		{"nil slice", []int(nil), false},
		{"false", false, false},
		{"pointer", &n, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAbsent(tt.v); got != tt.want {
				t.Errorf("IsAbsent(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestAbsentIdentity(t *testing.T) {
	var other any = absent{}
	if other != Absent {
		t.Error("every absent value must compare equal to Absent")
	}
	if Maybe(nil) != Absent {
		t.Error("Maybe(nil) must be Absent")
	}
}

func TestAbsentIsTotal(t *testing.T) {
	if Absent.Get("field") != Absent {
		t.Error("Get on Absent must return Absent")
	}
	if Absent.Index(0) != Absent {
		t.Error("Index on Absent must return Absent")
	}
	if Absent.Call(1, 2, 3) != Absent {
		t.Error("Call on Absent must return Absent")
	}
	for name, got := range map[string]any{
		"Add": Absent.Add(1),
		"Sub": Absent.Sub(1),
		"Mul": Absent.Mul(1),
		"Div": Absent.Div(1),
	} {
		if got != Absent {
			t.Errorf("%s on Absent = %v, want Absent", name, got)
		}
	}
	if Absent.Len() != 0 {
		t.Error("Absent must have zero length")
	}
	if Absent.Contains("x") || Absent.Contains(Absent) {
		t.Error("Absent must contain nothing")
	}
	if Absent.Bool() {
		t.Error("Absent must be falsy")
	}
	if Absent.Equal(Absent) || Absent.Less(1) || Absent.Greater(1) || Absent.LessEqual(1) || Absent.GreaterEqual(1) {
		t.Error("comparisons on Absent must be false")
	}
	if Absent.String() != "Absent" {
		t.Errorf("String() = %q", Absent.String())
	}
}

func TestAbsentJSON(t *testing.T) {
	out, err := json.Marshal(map[string]any{"v": Absent})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"v":null}` {
		t.Errorf("got %s", out)
	}
}

func TestMaybe(t *testing.T) {
	if got := Maybe(nil); got != Absent {
		t.Errorf("Maybe(nil) = %v, want Absent", got)
	}
	if got := MaybeOr(nil, 5); got != 5 {
		t.Errorf("MaybeOr(nil, 5) = %v, want 5", got)
	}
	if got := Maybe(7); got != 7 {
		t.Errorf("Maybe(7) = %v, want 7", got)
	}
	if got := MaybeOr(7, 5); got != 7 {
		t.Errorf("MaybeOr(7, 5) = %v, want 7", got)
	}
	if got := MaybeOr(nil, nil); got != Absent {
		t.Errorf("MaybeOr(nil, nil) = %v, want Absent", got)
	}
}

func TestMaybeIdempotent(t *testing.T) {
	var nilPtr *string
	for _, v := range []any{nil, Absent, 0, "x", nilPtr, 3.5, true} {
		once := Maybe(v)
		twice := Maybe(Maybe(v))
		if once != twice {
			t.Errorf("Maybe(Maybe(%v)) = %v, want %v", v, twice, once)
		}
	}
}

func ptrTo[T any](v T) *T { return &v }
