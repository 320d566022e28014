package cmd

import (
	"strings"
	"testing"

	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/date"
)

func TestParseList(t *testing.T) {
	testCases := []struct {
		arg     string
		want    habit.List
		wantErr bool
	}{
		{arg: "do", want: habit.Positive},
		{arg: "Do", want: habit.Positive},
		{arg: "positive", want: habit.Positive},
		{arg: "dont", want: habit.Negative},
		{arg: "don't", want: habit.Negative},
		{arg: "NEGATIVE", want: habit.Negative},
		{arg: "junk", wantErr: true},
		{arg: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := parseList(tc.arg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseList(%q) error = %v, wantErr %v", tc.arg, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("parseList(%q) = %v, want %v", tc.arg, got, tc.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	testCases := []struct {
		name    string
		arg     string
		want    date.Date
		wantErr bool
	}{
		{name: "empty means today", arg: "", want: date.Today()},
		{name: "valid key", arg: "2026-01-05", want: date.New(2026, 1, 5)},
		{name: "not a date", arg: "yesterday", wantErr: true},
		{name: "out of range", arg: "2026-13-40", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseDay(tc.arg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseDay(%q) error = %v, wantErr %v", tc.arg, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("parseDay(%q) = %s, want %s", tc.arg, got, tc.want)
			}
		})
	}
}

func TestResolveHabit(t *testing.T) {
	doc := habit.NewDocument()
	doc.Settings.Positive = []string{"Meditate", "Read 30 minutes", "Running", "Run"}

	testCases := []struct {
		name    string
		arg     string
		want    int
		wantErr string
	}{
		{name: "number", arg: "2", want: 1},
		{name: "first", arg: "1", want: 0},
		{name: "number too small", arg: "0", wantErr: "out of range"},
		{name: "number too large", arg: "5", wantErr: "out of range"},
		{name: "exact label", arg: "read 30 minutes", want: 1},
		{name: "exact beats prefix", arg: "run", want: 3},
		{name: "unique prefix", arg: "medi", want: 0},
		{name: "ambiguous prefix", arg: "R", wantErr: "ambiguous"},
		{name: "no match", arg: "swim", wantErr: "no habit matching"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveHabit(doc, habit.Positive, tc.arg)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("resolveHabit(%q) = %d, want error containing %q", tc.arg, got, tc.wantErr)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("resolveHabit(%q) error = %q, want it to contain %q", tc.arg, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveHabit(%q) error: %v", tc.arg, err)
			}
			if got != tc.want {
				t.Errorf("resolveHabit(%q) = %d, want %d", tc.arg, got, tc.want)
			}
		})
	}
}
