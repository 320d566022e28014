package habit

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/mtscully16/habit-tracker/date"
)

// Version is the document schema version written by this package.
const Version = 2

const (
	// MaxHabits caps the length of each habit list.
	MaxHabits = 100
	// MaxLabelLen caps a habit label, in runes.
	MaxLabelLen = 50
)

// DefaultPositive and DefaultNegative seed a fresh document.
var (
	DefaultPositive = []string{"Exercise", "Read", "Meditate", "Eat healthy", "Sleep early"}
	DefaultNegative = []string{"Junk food", "Social media", "Procrastinate", "Stay up late", "Skip planning"}
)

// List selects one of the two habit lists of a document.
type List int

const (
	// Positive is the "Do" list; a checked entry earns a point.
	Positive List = iota
	// Negative is the "Do Not" list; a checked entry costs a point.
	Negative
)

func (l List) String() string {
	switch l {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// Settings holds the two ordered habit lists. Order matters: index i of a
// list corresponds to index i of every day's marks for that list.
type Settings struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

// Labels returns the labels of one list.
func (s Settings) Labels(l List) []string {
	if l == Negative {
		return s.Negative
	}
	return s.Positive
}

// DayRecord holds one day's checklist state, positionally aligned to the
// document settings.
type DayRecord struct {
	Positive []bool `json:"positive"`
	Negative []bool `json:"negative"`
}

// Marks returns the boolean marks of one list.
func (r *DayRecord) Marks(l List) []bool {
	if l == Negative {
		return r.Negative
	}
	return r.Positive
}

func (r *DayRecord) setMarks(l List, marks []bool) {
	if l == Negative {
		r.Negative = marks
	} else {
		r.Positive = marks
	}
}

// Net returns the day's point balance: checked positives minus checked
// negatives.
func (r *DayRecord) Net() int {
	n := 0
	for _, v := range r.Positive {
		if v {
			n++
		}
	}
	for _, v := range r.Negative {
		if v {
			n--
		}
	}
	return n
}

// UI holds the last viewed selection, persisted so the next session opens
// where the previous one left.
//
// Month is zero based ([0,11]) in the persisted form, a leftover of the
// version 1 schema kept for wire compatibility. Go callers go through
// [Document.Selection] and [Document.SetMonthYear] which speak time.Month.
type UI struct {
	SelectedDate string `json:"selectedDate"`
	Mode         string `json:"mode"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
}

// Document is the canonical persisted unit: habit lists, day records and
// the last viewed selection.
//
// Mutating methods keep every DayRecord shape consistent with the current
// settings, so index i of a day always refers to the habit at index i.
type Document struct {
	Version  int                   `json:"version"`
	Settings Settings              `json:"settings"`
	Days     map[string]*DayRecord `json:"days"`
	UI       UI                    `json:"ui"`
}

// NewDocument returns the default document: seed labels, an all-false
// record for today and the current week selected.
func NewDocument() *Document {
	return newDocument(date.Today())
}

func newDocument(asOf date.Date) *Document {
	doc := &Document{
		Version: Version,
		Settings: Settings{
			Positive: slices.Clone(DefaultPositive),
			Negative: slices.Clone(DefaultNegative),
		},
		Days: make(map[string]*DayRecord),
		UI: UI{
			SelectedDate: asOf.String(),
			Mode:         date.Week.String(),
			Month:        int(asOf.Month()) - 1,
			Year:         asOf.Year(),
		},
	}
	doc.EnsureDay(asOf)
	return doc
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := &Document{
		Version: d.Version,
		Settings: Settings{
			Positive: slices.Clone(d.Settings.Positive),
			Negative: slices.Clone(d.Settings.Negative),
		},
		Days: make(map[string]*DayRecord, len(d.Days)),
		UI:   d.UI,
	}
	for key, rec := range d.Days {
		c.Days[key] = &DayRecord{
			Positive: slices.Clone(rec.Positive),
			Negative: slices.Clone(rec.Negative),
		}
	}
	return c
}

// Equal reports whether two documents hold the same state.
func (d *Document) Equal(x *Document) bool {
	return d.Version == x.Version &&
		slices.Equal(d.Settings.Positive, x.Settings.Positive) &&
		slices.Equal(d.Settings.Negative, x.Settings.Negative) &&
		d.UI == x.UI &&
		maps.EqualFunc(d.Days, x.Days, func(a, b *DayRecord) bool {
			return slices.Equal(a.Positive, b.Positive) && slices.Equal(a.Negative, b.Negative)
		})
}

// EnsureDay guarantees an entry for the given date, synthesizing an
// all-false record shaped to the current settings if missing.
func (d *Document) EnsureDay(on date.Date) *DayRecord {
	key := on.String()
	rec, ok := d.Days[key]
	if !ok {
		rec = &DayRecord{
			Positive: make([]bool, len(d.Settings.Positive)),
			Negative: make([]bool, len(d.Settings.Negative)),
		}
		d.Days[key] = rec
	}
	return rec
}

// Net returns the net points of the given date, 0 when the date has no
// record.
func (d *Document) Net(on date.Date) int {
	rec, ok := d.Days[on.String()]
	if !ok {
		return 0
	}
	return rec.Net()
}

// Checked reports the mark of habit i of the given list on the given date.
func (d *Document) Checked(on date.Date, l List, i int) bool {
	rec, ok := d.Days[on.String()]
	if !ok {
		return false
	}
	marks := rec.Marks(l)
	if i < 0 || i >= len(marks) {
		return false
	}
	return marks[i]
}

// SetCheck sets the mark of habit i of the given list on the given date,
// creating the day record if needed. It reports whether the index named an
// existing habit.
func (d *Document) SetCheck(on date.Date, l List, i int, checked bool) bool {
	if i < 0 || i >= len(d.Settings.Labels(l)) {
		return false
	}
	rec := d.EnsureDay(on)
	rec.Marks(l)[i] = checked
	return true
}

// Toggle flips the mark of habit i of the given list on the given date.
func (d *Document) Toggle(on date.Date, l List, i int) bool {
	return d.SetCheck(on, l, i, !d.Checked(on, l, i))
}

// AddHabit appends a habit to the given list and pads every day record
// with an unchecked mark. Blank labels and lists already at MaxHabits are
// rejected, leaving the document unchanged.
func (d *Document) AddHabit(l List, label string) bool {
	label = clipLabel(label)
	if label == "" || len(d.Settings.Labels(l)) >= MaxHabits {
		return false
	}
	if l == Negative {
		d.Settings.Negative = append(d.Settings.Negative, label)
	} else {
		d.Settings.Positive = append(d.Settings.Positive, label)
	}
	d.reshapeDays()
	return true
}

// RemoveHabit removes habit i from the given list and from every day
// record, preserving the marks of all other habits. Removing the last
// remaining entry of a list is rejected, leaving the document unchanged.
func (d *Document) RemoveHabit(l List, i int) bool {
	labels := d.Settings.Labels(l)
	if i < 0 || i >= len(labels) || len(labels) <= 1 {
		return false
	}
	if l == Negative {
		d.Settings.Negative = slices.Delete(slices.Clone(labels), i, i+1)
	} else {
		d.Settings.Positive = slices.Delete(slices.Clone(labels), i, i+1)
	}
	for _, rec := range d.Days {
		marks := rec.Marks(l)
		if i < len(marks) {
			rec.setMarks(l, slices.Delete(marks, i, i+1))
		}
	}
	d.reshapeDays()
	return true
}

// RenameHabit replaces the label of habit i of the given list. Day marks
// are untouched, the correspondence is positional.
func (d *Document) RenameHabit(l List, i int, label string) bool {
	label = clipLabel(label)
	labels := d.Settings.Labels(l)
	if label == "" || i < 0 || i >= len(labels) {
		return false
	}
	labels[i] = label
	return true
}

// SelectDate records the given date as the one being viewed, creating its
// day record so the selection always names a present key.
func (d *Document) SelectDate(on date.Date) {
	d.EnsureDay(on)
	d.UI.SelectedDate = on.String()
}

// SelectedDate returns the date being viewed.
func (d *Document) SelectedDate() date.Date {
	return date.ParseKey(d.UI.SelectedDate)
}

// SetMode records the report window mode being viewed.
func (d *Document) SetMode(p date.Period) {
	d.UI.Mode = p.String()
}

// SetMonthYear records the (month, year) pair the month and year windows
// use.
func (d *Document) SetMonthYear(m time.Month, year int) {
	d.UI.Month = int(m) - 1
	d.UI.Year = year
}

// Selection returns the report selection persisted in the UI state.
func (d *Document) Selection() Selection {
	period := date.Week
	switch d.UI.Mode {
	case date.Month.String():
		period = date.Month
	case date.Year.String():
		period = date.Year
	case date.All.String():
		period = date.All
	}
	return Selection{
		Period: period,
		Month:  time.Month(d.UI.Month + 1),
		Year:   d.UI.Year,
	}
}

// Earliest returns the chronologically first day key of the document. The
// keys are "YYYY-MM-DD" so the lexicographic minimum is the chronological
// one.
func (d *Document) Earliest() (date.Date, bool) {
	var minKey string
	for key := range d.Days {
		if minKey == "" || key < minKey {
			minKey = key
		}
	}
	if minKey == "" {
		return date.Date{}, false
	}
	return date.ParseKey(minKey), true
}

// repair enforces the document invariants in place: non-empty habit lists,
// day records shaped to the settings, an entry for the given date, a
// selection naming a present key and a recognized mode. Mutating methods
// already preserve these; repair covers documents assembled by hand and
// the wall clock moving past midnight during a session.
func (d *Document) repair(asOf date.Date) {
	d.Version = Version
	if len(d.Settings.Positive) == 0 {
		d.Settings.Positive = slices.Clone(DefaultPositive)
	}
	if len(d.Settings.Negative) == 0 {
		d.Settings.Negative = slices.Clone(DefaultNegative)
	}
	if d.Days == nil {
		d.Days = make(map[string]*DayRecord)
	}
	d.reshapeDays()
	d.EnsureDay(asOf)
	if _, ok := d.Days[d.UI.SelectedDate]; !ok {
		d.UI.SelectedDate = asOf.String()
	}
	switch d.UI.Mode {
	case "week", "month", "year", "all":
	default:
		d.UI.Mode = date.Week.String()
	}
	d.UI.Month = min(max(d.UI.Month, 0), 11)
}

// reshapeDays fits every day record to the current settings lengths: marks
// beyond a list length are dropped, missing marks default to false.
func (d *Document) reshapeDays() {
	np, nn := len(d.Settings.Positive), len(d.Settings.Negative)
	for key, rec := range d.Days {
		if rec == nil {
			rec = &DayRecord{}
			d.Days[key] = rec
		}
		rec.Positive = fitMarks(rec.Positive, np)
		rec.Negative = fitMarks(rec.Negative, nn)
	}
}

func fitMarks(marks []bool, n int) []bool {
	if len(marks) == n {
		return marks
	}
	fitted := make([]bool, n)
	copy(fitted, marks)
	return fitted
}

// clipLabel trims a label and caps it at MaxLabelLen runes.
func clipLabel(label string) string {
	label = strings.TrimSpace(label)
	runes := []rune(label)
	if len(runes) > MaxLabelLen {
		return string(runes[:MaxLabelLen])
	}
	return label
}
