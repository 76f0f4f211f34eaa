package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // v7
		"123e4567-e89b-12d3-a456-426614174000", // v1
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // uppercase
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"{0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b}",
		"",
	}
	for _, s := range valid {
		if !IsValidUUID(s) {
			t.Errorf("IsValidUUID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidUUID(s) {
			t.Errorf("IsValidUUID(%q) = true, want false", s)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:05", "17:30", "23:59"}
	invalid := []string{"24:00", "8:05", "08:60", "0805", "08:05:00", ""}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestPositiveIntOr(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"0", 20},
		{"-4", 20},
		{"abc", 20},
		{"", 20},
		{"2.5", 20},
	}
	for _, c := range cases {
		if got := PositiveIntOr(c.input, 20); got != c.want {
			t.Errorf("PositiveIntOr(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "page", Message: "page must be positive"},
	}
	if got := errs.Error(); got != "date: date is required; page: page must be positive" {
		t.Errorf("Error() = %q", got)
	}
	if m := errs.ToMap(); m["page"] != "page must be positive" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}
