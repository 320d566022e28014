package habit

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/mtscully16/habit-tracker/date"
)

// Normalize turns a value of unknown shape into a valid document. It never
// fails: malformed input degrades to defaults instead of raising, and the
// result always satisfies the document invariants (day records shaped to
// the settings, an entry for today, at least one habit per list, a
// selected date naming a present key).
//
// Normalize is pure and idempotent. It runs on every load so state written
// by older versions, another device, or a hand edit always comes up
// usable.
func Normalize(raw any) *Document {
	return normalize(raw, date.Today())
}

// normalize is the testable core of Normalize. asOf supplies the wall
// clock date.
func normalize(raw any, asOf date.Date) *Document {
	m, ok := raw.(map[string]any)
	if !ok {
		return newDocument(asOf)
	}

	doc := &Document{Version: Version, Days: make(map[string]*DayRecord)}

	settings, _ := m["settings"].(map[string]any)
	doc.Settings.Positive = normalizeLabels(settings["positive"], DefaultPositive)
	doc.Settings.Negative = normalizeLabels(settings["negative"], DefaultNegative)

	np, nn := len(doc.Settings.Positive), len(doc.Settings.Negative)
	if days, ok := m["days"].(map[string]any); ok {
		for key, value := range days {
			rec, _ := value.(map[string]any)
			doc.Days[key] = &DayRecord{
				Positive: normalizeMarks(rec["positive"], np),
				Negative: normalizeMarks(rec["negative"], nn),
			}
		}
	}
	doc.EnsureDay(asOf)

	ui, _ := m["ui"].(map[string]any)
	doc.UI = normalizeUI(ui, doc.Days, asOf)

	return doc
}

// normalizeLabels coerces a raw value into a habit list: every entry
// becomes a string and the list is capped at MaxHabits. Absent, non-list
// or empty input falls back to the given defaults.
func normalizeLabels(raw any, defaults []string) []string {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return slices.Clone(defaults)
	}
	if len(items) > MaxHabits {
		items = items[:MaxHabits]
	}
	labels := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			s = fmt.Sprint(item)
		}
		labels = append(labels, s)
	}
	return labels
}

// normalizeMarks fits a raw value into a mark list of length n: marks
// beyond n are dropped, missing or non-boolean entries default to false.
func normalizeMarks(raw any, n int) []bool {
	marks := make([]bool, n)
	items, ok := raw.([]any)
	if !ok {
		return marks
	}
	for i := 0; i < n && i < len(items); i++ {
		b, _ := items[i].(bool)
		marks[i] = b
	}
	return marks
}

// normalizeUI extracts the last viewed selection, substituting defaults
// for anything missing or malformed. The selected date must name a key
// present in days (today always is, after EnsureDay).
func normalizeUI(raw map[string]any, days map[string]*DayRecord, asOf date.Date) UI {
	ui := UI{
		SelectedDate: asOf.String(),
		Mode:         date.Week.String(),
		Month:        int(asOf.Month()) - 1,
		Year:         asOf.Year(),
	}
	if selected, ok := raw["selectedDate"].(string); ok {
		if _, present := days[selected]; present {
			ui.SelectedDate = selected
		}
	}
	if mode, ok := raw["mode"].(string); ok {
		switch mode {
		case "week", "month", "year", "all":
			ui.Mode = mode
		}
	}
	if month, ok := intValue(raw["month"]); ok {
		ui.Month = min(max(month, 0), 11)
	}
	if year, ok := intValue(raw["year"]); ok {
		ui.Year = year
	}
	return ui
}

// intValue reports whether raw is a well formed integer. JSON numbers
// decode as float64; integral values are accepted, fractional ones are
// not.
func intValue(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if math.Trunc(v) != v || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case json.Number:
		i, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
