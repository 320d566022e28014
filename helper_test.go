package habit

import (
	"testing"
	"time"

	"github.com/mtscully16/habit-tracker/date"
)

// Fixed dates used across tests: a Wednesday and the Monday and Sunday
// bounding its week.
var (
	monday    = date.New(2026, time.January, 19)
	wednesday = date.New(2026, time.January, 21)
	sunday    = date.New(2026, time.January, 25)
)

// mapDoc is a shorthand for building raw documents the way JSON decoding
// delivers them.
type mapDoc = map[string]any

// listOf builds the []any shape JSON decoding yields for arrays.
func listOf(items ...any) []any { return items }

// checkInvariants fails the test unless doc is a valid document as of the
// given date: non-empty habit lists, every record shaped to the settings,
// an entry for asOf, and a selection naming a present key and a
// recognized mode.
func checkInvariants(t *testing.T, doc *Document, asOf date.Date) {
	t.Helper()
	if len(doc.Settings.Positive) == 0 || len(doc.Settings.Negative) == 0 {
		t.Errorf("settings lists = %d positive, %d negative, want both non-empty",
			len(doc.Settings.Positive), len(doc.Settings.Negative))
	}
	for key, rec := range doc.Days {
		if len(rec.Positive) != len(doc.Settings.Positive) || len(rec.Negative) != len(doc.Settings.Negative) {
			t.Errorf("day %q shape = (%d, %d), want (%d, %d)",
				key, len(rec.Positive), len(rec.Negative),
				len(doc.Settings.Positive), len(doc.Settings.Negative))
		}
	}
	if _, ok := doc.Days[asOf.String()]; !ok {
		t.Errorf("no day record for %s", asOf)
	}
	if _, ok := doc.Days[doc.UI.SelectedDate]; !ok {
		t.Errorf("selected date %q not a present day key", doc.UI.SelectedDate)
	}
	switch doc.UI.Mode {
	case "week", "month", "year", "all":
	default:
		t.Errorf("mode = %q, want one of week, month, year, all", doc.UI.Mode)
	}
	if doc.UI.Month < 0 || doc.UI.Month > 11 {
		t.Errorf("month = %d, want within [0,11]", doc.UI.Month)
	}
}
