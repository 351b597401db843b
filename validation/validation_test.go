package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lowlandresearch/larc/errors"
)

type limits struct {
	Name  string `mapstructure:"name" validate:"required"`
	Depth int    `mapstructure:"stack_depth" validate:"gte=1,lte=64"`
	Inner inner  `mapstructure:"inner"`
}

type inner struct {
	Comma string `mapstructure:"comma" validate:"len=1"`
}

func TestValidateStructValid(t *testing.T) {
	err := Validate(limits{Name: "x", Depth: 5, Inner: inner{Comma: ","}})
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestValidateStructInvalid(t *testing.T) {
	err := Validate(limits{Depth: 100, Inner: inner{Comma: ",,"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"name: is required", "stack_depth: must be at most 64", "inner.comma: must have length 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	appErr, _ := errors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %v", appErr.Details["fields"])
	}
}

func TestValidatorCollects(t *testing.T) {
	v := New()
	v.Required("name", "   ").
		Min("max_expand", 0, 1).
		Range("depth", 99, 1, 64).
		OneOf("format", "xml", []string{"json", "console"}).
		Custom(false, "comma", "must not be a quote")

	if got := len(v.Errors()); got != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", got, v.Errors())
	}
	err := v.Err()
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestValidatorNoErrors(t *testing.T) {
	v := New().
		Required("name", "larc").
		Min("n", 3, 1).
		Range("n", 3, 1, 5).
		OneOf("format", "", []string{"json"}).
		Pattern("code", "", `^[A-Z]+$`).
		Custom(true, "x", "unused")
	if v.HasErrors() {
		t.Errorf("expected no errors, got %v", v.Errors())
	}
	if err := v.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestValidatorPattern(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"ABC123", false},
		{"abc", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := New().Pattern("code", tt.value, `^[A-Z0-9]+$`)
			if v.HasErrors() != tt.wantErr {
				t.Errorf("Pattern(%q) errors = %v, want %v", tt.value, v.HasErrors(), tt.wantErr)
			}
		})
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	if New().OptionalUUID("run_id", "").HasErrors() {
		t.Error("expected no error for empty optional UUID")
	}
	if New().OptionalUUID("run_id", uuid.NewString()).HasErrors() {
		t.Error("expected no error for valid UUID")
	}
	if !New().OptionalUUID("run_id", "bad-uuid").HasErrors() {
		t.Error("expected error for invalid UUID")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"MaxExpand":  "max_expand",
		"StackDepth": "stack_depth",
		"name":       "name",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
