package renderer

import (
	"bytes"
	"fmt"
	"strings"

	habit "github.com/mtscully16/habit-tracker"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// barWidth is the length of a full trend bar, in cells.
const barWidth = 20

// ProgressMarkdown renders a compounding progress report: the endpoint
// summary followed by the day by day trend.
func ProgressMarkdown(s *habit.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Progress (%s)", periodTitle(s.Period), s.Range.Identifier()))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Score"),
			md.Bold(s.Summary.Last.StringFixed(4)),
		},
		Rows: [][]string{
			{"Change", s.Summary.Change.SignedString()},
			{"Start", s.Summary.First.StringFixed(4)},
			{"Delta", signedFixed(s.Summary.Delta)},
			{"Days", fmt.Sprintf("%d", s.Range.Len())},
		},
	})

	doc.H2("Daily Trend")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Day", "Net", "Score", "Trend"},
	}
	lo, hi := bounds(s.Points)
	for _, p := range s.Points {
		label, net := p.Label, fmt.Sprintf("%+d", p.Net)
		if p.Baseline {
			label, net = "start", ""
		}
		table.Rows = append(table.Rows, []string{
			label,
			net,
			p.Value.StringFixed(4),
			bar(p.Value, lo, hi),
		})
	}
	doc.Table(table)

	return doc.String()
}

// bounds returns the lowest and highest value of the series.
func bounds(points []habit.SeriesPoint) (lo, hi decimal.Decimal) {
	lo, hi = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value.LessThan(lo) {
			lo = p.Value
		}
		if p.Value.GreaterThan(hi) {
			hi = p.Value
		}
	}
	return lo, hi
}

// bar scales value into a row of cells between lo and hi. A flat series
// renders as a half bar, a flat line at mid height.
func bar(value, lo, hi decimal.Decimal) string {
	span := hi.Sub(lo)
	if span.IsZero() {
		return strings.Repeat("█", barWidth/2)
	}
	cells := value.Sub(lo).Div(span).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart()
	return strings.Repeat("█", int(cells))
}

// signedFixed formats a decimal with an explicit sign, the convention of
// every delta in a report.
func signedFixed(d decimal.Decimal) string {
	s := d.StringFixed(4)
	if d.Sign() >= 0 {
		return "+" + s
	}
	return s
}
