package util

import (
	"slices"
	"testing"

	"github.com/lowlandresearch/larc/errors"
)

func TestShuffledKeepsElements(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out := Shuffled(in)
	if len(out) != len(in) {
		t.Fatalf("expected %d elements, got %d", len(in), len(out))
	}
	if !slices.Equal(Sorted(out), in) {
		t.Errorf("Shuffled changed the elements: %v", out)
	}
	if !slices.Equal(in, []int{1, 2, 3, 4, 5}) {
		t.Error("Shuffled modified its input")
	}
}

func TestSample(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	got, err := Sample(2, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] == got[1] {
		t.Errorf("expected two distinct elements, got %v", got)
	}
	for _, v := range got {
		if !Contains(in, v) {
			t.Errorf("%q is not from the input", v)
		}
	}
}

func TestSampleTooLarge(t *testing.T) {
	_, err := Sample(3, []int{1})
	if !errors.HasCode(err, errors.ErrCodeTooLarge) {
		t.Errorf("expected TOO_LARGE, got %v", err)
	}
}
