package date

import (
	"testing"
	"time"
)

func NewWeeklyRange(d Date) Range {
	return NewRange(d, Week)
}
func NewMonthlyRange(d Date) Range {
	return NewRange(d, Month)
}
func NewYearlyRange(d Date) Range {
	return NewRange(d, Year)
}

func TestNewWeeklyRange(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{
			name: "A Monday",
			in:   New(2026, time.January, 19),
			want: Range{From: New(2026, time.January, 19), To: New(2026, time.January, 25)},
		},
		{
			name: "A Wednesday",
			in:   New(2025, time.September, 10),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name: "Week Across Months",
			in:   New(2026, time.March, 31),
			want: Range{From: New(2026, time.March, 30), To: New(2026, time.April, 5)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewWeeklyRange(tc.in); got != tc.want {
				t.Errorf("NewWeeklyRange() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewMonthlyRange(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{
			name: "A leap year",
			in:   New(2024, time.February, 15),
			want: Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)},
		},
		{
			name: "A plain month",
			in:   New(2026, time.April, 7),
			want: Range{From: New(2026, time.April, 1), To: New(2026, time.April, 30)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewMonthlyRange(tc.in); got != tc.want {
				t.Errorf("NewMonthlyRange() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewYearlyRange(t *testing.T) {
	d := New(2025, time.September, 8)
	want := Range{From: New(2025, time.January, 1), To: New(2025, time.December, 31)}
	got := NewYearlyRange(d)
	if got != want {
		t.Errorf("NewYearlyRange() = %v, want %v", got, want)
	}
}

func TestRange_Name(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Standard Week", NewWeeklyRange(New(2025, time.September, 8)), "week"},
		{"Standard Month", NewMonthlyRange(New(2025, time.September, 1)), "month"},
		{"Standard Year", NewYearlyRange(New(2025, time.January, 1)), "year"},
		{"Non-Standard Range", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "special"},
		{"Leap Year Month", NewMonthlyRange(New(2024, time.February, 1)), "month"},
		{"Multi Year", Range{From: New(2025, time.January, 1), To: New(2026, time.December, 31)}, "special"},
		{"Single Day", Range{From: New(2025, time.September, 8), To: New(2025, time.September, 8)}, "special"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Name(); got != tc.want {
				t.Errorf("Name() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	testCases := []struct {
		name string
		in   Range
		want string
	}{
		{"Weekly Identifier", NewWeeklyRange(New(2025, time.September, 8)), "2025-W37"},
		{"Early Week Identifier", NewWeeklyRange(New(2025, time.January, 6)), "2025-W02"},
		{"Monthly Identifier", NewMonthlyRange(New(2025, time.September, 1)), "2025-09"},
		{"Yearly Identifier", NewYearlyRange(New(2025, time.January, 1)), "2025"},
		{"Custom Range Identifier", Range{From: New(2025, time.September, 2), To: New(2025, time.September, 10)}, "2025-09-02_2025-09-10"},
		{"Eror Prone Identifier", Range{From: New(2025, time.January, 1), To: New(2026, time.December, 31)}, "2025-01-01_2026-12-31"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Identifier(); got != tc.want {
				t.Errorf("Identifier() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{"Week", "week", Week, false},
		{"Month", "month", Month, false},
		{"Year", "year", Year, false},
		{"All", "all", All, false},
		{"Weekly", "weekly", Week, false},
		{"Monthly", "monthly", Month, false},
		{"Yearly", "yearly", Year, false},
		{"Ever", "ever", All, false},
		{"Mixed Case", "Week", Week, false},
		{"Unknown", "unknown", Week, true},
		{"Empty", "", Week, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
