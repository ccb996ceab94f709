package service_test

import (
	"testing"

	"github.com/maxviazov/pagination/internal/service"
)

func TestIsValidSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"single word", "golang", true},
		{"hyphenated", "intro-to-go", true},
		{"digits", "go-1-22", true},
		{"uppercase", "Intro", false},
		{"double hyphen", "intro--go", false},
		{"leading hyphen", "-intro", false},
		{"trailing hyphen", "intro-", false},
		{"space", "intro go", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.IsValidSlug(tc.input); got != tc.want {
				t.Errorf("IsValidSlug(%q) = %v; want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFieldErrors_IgnoresOtherErrors(t *testing.T) {
	if fe := service.FieldErrors(service.ErrInvalidInput); fe != nil {
		t.Fatalf("bare sentinel carries no fields, got %v", fe)
	}
	if err := service.NewInvalidInputError(nil); err != nil {
		t.Fatalf("expected nil for no field errors, got %v", err)
	}
}
