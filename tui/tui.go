// Package tui implements the interactive terminal interface of habits: a
// checklist tab to toggle today's marks and a progress tab showing the
// compounding score.
//
// The model never mutates documents itself. Every edit goes through the
// shared Tracker, so persistence, repair and sync uploads behave exactly as
// they do for the one-shot commands.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/date"
	"github.com/shopspring/decimal"
)

const (
	tabChecklist = iota
	tabProgress
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// tickMsg refreshes the document snapshot, so edits adopted from the sync
// service show up without a keypress.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model of the habits TUI.
type Model struct {
	tracker *habit.Tracker
	doc     *habit.Document

	tab    int
	list   habit.List
	cursor int

	width  int
	height int
}

// New returns a model over tracker, opened on the checklist tab with the
// cursor on the first habit of the Do list.
func New(tracker *habit.Tracker) Model {
	return Model{
		tracker: tracker,
		doc:     tracker.Document(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.doc = m.tracker.Document()
		m.clampCursor()
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1":
			m.tab = tabChecklist
		case "2":
			m.tab = tabProgress
		case "left", "right":
			m.tab = 1 - m.tab
		case "tab":
			if m.tab == tabChecklist {
				if m.list == habit.Positive {
					m.list = habit.Negative
				} else {
					m.list = habit.Positive
				}
				m.clampCursor()
			}
		case "up", "k":
			if m.tab == tabChecklist && m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.tab == tabChecklist {
				m.cursor++
				m.clampCursor()
			}
		case " ", "enter":
			if m.tab == tabChecklist {
				m.toggle()
			}
		case "w", "m", "y", "a":
			if m.tab == tabProgress {
				m.setWindow(msg.String())
			}
		}
	}

	return m, nil
}

// toggle flips the habit under the cursor for the selected day.
func (m *Model) toggle() {
	l, i := m.list, m.cursor
	doc, ok := m.tracker.Update(func(d *habit.Document) bool {
		return d.Toggle(d.SelectedDate(), l, i)
	})
	if ok {
		m.doc = doc
	}
}

// setWindow switches the progress window and remembers it in the document.
func (m *Model) setWindow(key string) {
	var period date.Period
	switch key {
	case "m":
		period = date.Month
	case "y":
		period = date.Year
	case "a":
		period = date.All
	default:
		period = date.Week
	}
	on := m.doc.SelectedDate()
	doc, ok := m.tracker.Update(func(d *habit.Document) bool {
		d.SetMode(period)
		if period == date.Month || period == date.Year {
			d.SetMonthYear(on.Month(), on.Year())
		}
		return true
	})
	if ok {
		m.doc = doc
	}
}

func (m *Model) clampCursor() {
	n := len(m.doc.Settings.Labels(m.list))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	on := m.doc.SelectedDate()
	header := titleStyle.Render(fmt.Sprintf("Habits - %s", on.Format("Mon, Jan 2 2006")))

	tabs := make([]string, 0, 2)
	for i, name := range []string{"[1] Checklist", "[2] Progress"} {
		if i == m.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var content string
	if m.tab == tabChecklist {
		content = m.checklistView(on)
	} else {
		content = m.progressView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		tabRow,
		"",
		content,
		"",
		m.footer(),
	)
}

func (m Model) checklistView(on date.Date) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Do"))
	b.WriteString("\n")
	b.WriteString(m.listView(habit.Positive, on))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Do Not"))
	b.WriteString("\n")
	b.WriteString(m.listView(habit.Negative, on))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Net: %+d point(s)", m.doc.Net(on)))
	return b.String()
}

func (m Model) listView(l habit.List, on date.Date) string {
	var b strings.Builder
	for i, label := range m.doc.Settings.Labels(l) {
		mark := " "
		if m.doc.Checked(on, l, i) {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s", mark, label)
		switch {
		case l == m.list && i == m.cursor:
			b.WriteString(selectedStyle.Render("> " + line))
		case mark == "x":
			b.WriteString("  " + checkedStyle.Render(line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) progressView() string {
	s := habit.NewSeries(m.doc, m.doc.Selection(), date.Today())

	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%s)", windowName(s.Period), s.Range.Identifier())))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score %s  %s over %d day(s)\n\n",
		s.Summary.Last.StringFixed(4), s.Summary.Change.SignedString(), s.Range.Len()))

	width := m.width - 30
	if width < 10 {
		width = 10
	}
	if width > 40 {
		width = 40
	}

	// One row per day; long windows keep only the tail that fits.
	points := s.Points[1:]
	visible := m.height - 12
	if visible < 5 {
		visible = 5
	}
	if len(points) > visible {
		b.WriteString(dimStyle.Render(fmt.Sprintf("(last %d of %d days)", visible, len(points))))
		b.WriteString("\n")
		points = points[len(points)-visible:]
	}

	lo, hi := valueBounds(s.Points)
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%s  %+d  %s %s\n",
			p.Label, p.Net, scoreBar(p.Value, lo, hi, width), p.Value.StringFixed(4)))
	}
	return b.String()
}

func (m Model) footer() string {
	hints := []string{
		keyStyle.Render("1/2") + " tabs",
	}
	if m.tab == tabChecklist {
		hints = append(hints,
			keyStyle.Render("↑↓")+" move",
			keyStyle.Render("space")+" toggle",
			keyStyle.Render("tab")+" do/don't",
		)
	} else {
		hints = append(hints, keyStyle.Render("w/m/y/a")+" window")
	}
	hints = append(hints, keyStyle.Render("q")+" quit")
	return dimStyle.Render(strings.Join(hints, " • "))
}

func windowName(p date.Period) string {
	switch p {
	case date.Month:
		return "Month Progress"
	case date.Year:
		return "Year Progress"
	case date.All:
		return "All Time Progress"
	default:
		return "Week Progress"
	}
}

func valueBounds(points []habit.SeriesPoint) (lo, hi decimal.Decimal) {
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

// scoreBar scales value between lo and hi into a fixed-width bar. A flat
// series draws a half bar.
func scoreBar(value, lo, hi decimal.Decimal, width int) string {
	span := hi.Sub(lo)
	filled := width / 2
	if !span.IsZero() {
		filled = int(value.Sub(lo).Div(span).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}
