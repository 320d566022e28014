package habit

import (
	"time"

	"github.com/mtscully16/habit-tracker/date"
	"github.com/shopspring/decimal"
)

// GrowthRate is the per-point daily growth: each net point moves the
// cumulative value by one percent.
const GrowthRate = "0.01"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	rate    = decimal.RequireFromString(GrowthRate)
)

// Selection names the window a series covers. Month and Year are only
// consulted by the month and year periods.
type Selection struct {
	Period date.Period
	Month  time.Month
	Year   int
}

// SeriesPoint is a single step of the compounding series.
type SeriesPoint struct {
	Date     date.Date
	Label    string
	Net      int
	Value    decimal.Decimal
	Baseline bool
}

// SeriesSummary condenses a series into its endpoints.
type SeriesSummary struct {
	First  decimal.Decimal
	Last   decimal.Decimal
	Delta  decimal.Decimal
	Change Percent
}

// Series is the compounding progress over a window: a baseline point worth
// 1 at the window start, then one step per calendar day.
type Series struct {
	Range   date.Range
	Period  date.Period
	Points  []SeriesPoint
	Summary SeriesSummary
}

// NewSeries derives the compounding series of doc over the selected
// window.
//
// The recurrence is multiplicative and order dependent: every calendar day
// of the window, in ascending order with no gaps, multiplies the running
// value by (1 + GrowthRate × net points of the day). Days without a record
// contribute zero net points and leave the value unchanged. asOf anchors
// the week and all windows; production callers pass date.Today().
func NewSeries(doc *Document, sel Selection, asOf date.Date) *Series {
	r := resolveRange(doc, sel, asOf)
	s := &Series{
		Range:  r,
		Period: sel.Period,
		Points: make([]SeriesPoint, 0, r.Len()+1),
	}

	value := one
	s.Points = append(s.Points, SeriesPoint{
		Date:     r.From,
		Label:    r.From.ShortLabel(),
		Value:    value,
		Baseline: true,
	})
	for on := range r.Days() {
		net := doc.Net(on)
		value = value.Mul(one.Add(rate.Mul(decimal.NewFromInt(int64(net)))))
		s.Points = append(s.Points, SeriesPoint{
			Date:  on,
			Label: on.ShortLabel(),
			Net:   net,
			Value: value,
		})
	}

	first := s.Points[0].Value
	last := s.Points[len(s.Points)-1].Value
	s.Summary = SeriesSummary{
		First: first,
		Last:  last,
		Delta: last.Sub(first),
	}
	if !first.IsZero() {
		change, _ := last.Sub(first).Div(first).Mul(hundred).Float64()
		s.Summary.Change = Percent(change)
	}
	return s
}

// resolveRange turns a selection into calendar bounds.
//
// The week window always covers the week containing asOf, not the selected
// date. The all window runs from the earliest recorded day through asOf;
// with no history it degrades to the single day asOf.
func resolveRange(doc *Document, sel Selection, asOf date.Date) date.Range {
	switch sel.Period {
	case date.Month:
		first := date.New(sel.Year, sel.Month, 1)
		return date.Range{From: first, To: first.EndOf(date.Month)}
	case date.Year:
		return date.Range{
			From: date.New(sel.Year, time.January, 1),
			To:   date.New(sel.Year, time.December, 31),
		}
	case date.All:
		from, ok := doc.Earliest()
		if !ok || from.After(asOf) {
			from = asOf
		}
		return date.Range{From: from, To: asOf}
	default:
		return date.NewRange(asOf, date.Week)
	}
}
