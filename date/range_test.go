package date

import (
	"slices"
	"testing"
	"time"
)

func TestRange_Days(t *testing.T) {
	r := NewRange(New(2026, time.January, 21), Week)
	var got []Date
	for on := range r.Days() {
		got = append(got, on)
	}
	want := []Date{
		New(2026, time.January, 19),
		New(2026, time.January, 20),
		New(2026, time.January, 21),
		New(2026, time.January, 22),
		New(2026, time.January, 23),
		New(2026, time.January, 24),
		New(2026, time.January, 25),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
}

func TestRange_Len(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want int
	}{
		{"Week", NewRange(New(2026, time.January, 19), Week), 7},
		{"Leap February", NewRange(New(2024, time.February, 1), Month), 29},
		{"Single Day", Range{From: New(2026, time.January, 19), To: New(2026, time.January, 19)}, 1},
		{"Inverted", Range{From: New(2026, time.January, 20), To: New(2026, time.January, 19)}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Len(); got != tc.want {
				t.Errorf("Len() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(2026, time.January, 19), To: New(2026, time.January, 25)}
	testCases := []struct {
		name string
		in   Date
		want bool
	}{
		{"Lower Boundary", New(2026, time.January, 19), true},
		{"Upper Boundary", New(2026, time.January, 25), true},
		{"Inside", New(2026, time.January, 22), true},
		{"Before", New(2026, time.January, 18), false},
		{"After", New(2026, time.January, 26), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.in); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
