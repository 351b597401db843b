package util

import (
	"strconv"
	"testing"
)

func TestPtr(t *testing.T) {
	p := Ptr(42)
	if p == nil || *p != 42 {
		t.Errorf("Ptr(42) = %v", p)
	}
}

func TestDeref(t *testing.T) {
	if got := Deref(Ptr("x")); got != "x" {
		t.Errorf("Deref = %q, want x", got)
	}
	var nilPtr *int
	if got := Deref(nilPtr); got != 0 {
		t.Errorf("Deref(nil) = %d, want 0", got)
	}
}

func TestCompose(t *testing.T) {
	f := Compose(func(n int) int { return n * 2 }, strconv.Itoa)
	if got := f(21); got != "42" {
		t.Errorf("Compose = %q, want 42", got)
	}
	if Identity("same") != "same" {
		t.Error("Identity changed its argument")
	}
}
