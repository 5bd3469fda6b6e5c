package planner

import (
	"errors"
	"testing"
)

func TestResolveHour(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"7:00", 7, false},
		{"8:30", 8, false},
		{"10:00", 10, false},
		{"12:00", 12, false},
		{"1:00", 13, false},
		{"1:30", 13, false},
		{"4:00", 16, false},
		{"6:00", 18, false},
		{" 9:00 ", 9, false},
		{"0:00", 0, true},
		{"13:00", 0, true},
		{"-1:00", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ResolveHour(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("ResolveHour(%q) error = %v, want ErrInvalidTimeFormat", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveHour(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveHour(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestResolveRange(t *testing.T) {
	tests := []struct {
		times      string
		start, end int
		wantErr    bool
	}{
		{"7:00-8:30", 7, 8, false},
		{"9:00-10:00", 9, 10, false},
		{"10:00-12:00", 10, 12, false},
		{"1:00-4:00", 13, 16, false},
		{"2:30-5:30", 14, 17, false},
		// Lab slot ending at 7 PM: the end bound resolves to morning first,
		// then falls back to PM because it precedes the start.
		{"4:00-7:00", 16, 19, false},
		// Range crossing noon.
		{"11:00-1:00", 11, 13, false},
		{"11:00-12:00", 11, 12, false},
		{"12:00-1:00", 12, 13, false},
		{"7:00", 0, 0, true},
		{"7:00-x", 0, 0, true},
		{"x-8:00", 0, 0, true},
		{"TBA", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		start, end, err := ResolveRange(tt.times)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ResolveRange(%q) = %d,%d, want error", tt.times, start, end)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveRange(%q) unexpected error: %v", tt.times, err)
			continue
		}
		if start != tt.start || end != tt.end {
			t.Errorf("ResolveRange(%q) = %d,%d, want %d,%d", tt.times, start, end, tt.start, tt.end)
		}
	}
}
