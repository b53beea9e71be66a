package normalizer_test

import (
	"testing"
	"time"

	"github.com/tomoki-abe/shuho/internal/normalizer"
)

func TestNormalizeTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"09:00", "09:00"},
		{"9:00", "09:00"},
		{"09:00:00", "09:00"},
		{"18:45:30", "18:45"},
		{"2026-08-31T09:00:00Z", "09:00"},
		{"2026-08-31T09:00:00+09:00", "09:00"},
		{"2026-08-31 09:00:00", "09:00"},
		{"", ""},
		{"  ", ""},
		// Unrecognized input passes through for the tolerant parser.
		{"25:99", "25:99"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		if got := normalizer.NormalizeTimeOfDay(tt.input); got != tt.want {
			t.Errorf("NormalizeTimeOfDay(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeBreakMinutes(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{60, 60},
		{0, 0},
		{-15, 0},
	}
	for _, tt := range tests {
		if got := normalizer.NormalizeBreakMinutes(tt.input); got != tt.want {
			t.Errorf("NormalizeBreakMinutes(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeMood(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{1, 1},
		{5, 5},
		{0, 3},
		{-2, 1},
		{9, 5},
	}
	for _, tt := range tests {
		if got := normalizer.NormalizeMood(tt.input); got != tt.want {
			t.Errorf("NormalizeMood(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2026-08-31", "2026-08-31T10:30:00Z"} {
		got, ok := normalizer.NormalizeDate(input)
		if !ok {
			t.Errorf("NormalizeDate(%q) not ok", input)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("NormalizeDate(%q) = %v, want %v", input, got, want)
		}
	}

	if _, ok := normalizer.NormalizeDate("not-a-date"); ok {
		t.Error("NormalizeDate should reject garbage input")
	}
	if _, ok := normalizer.NormalizeDate(""); ok {
		t.Error("NormalizeDate should reject empty input")
	}
}
