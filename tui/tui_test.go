package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/date"
)

func newTestModel(t *testing.T) (Model, *habit.Tracker) {
	t.Helper()
	tracker := habit.NewTracker(habit.NewMemStore(), habit.StorageKey)
	return New(tracker), tracker
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestModel_ToggleGoesThroughTracker(t *testing.T) {
	m, tracker := newTestModel(t)

	m = press(t, m, " ")

	doc := tracker.Document()
	on := doc.SelectedDate()
	if !doc.Checked(on, habit.Positive, 0) {
		t.Errorf("Checked(%s, Positive, 0) = false after toggle, want true", on)
	}

	m = press(t, m, " ")
	if tracker.Document().Checked(on, habit.Positive, 0) {
		t.Errorf("Checked(%s, Positive, 0) = true after second toggle, want false", on)
	}
}

func TestModel_TabSwitchesList(t *testing.T) {
	m, tracker := newTestModel(t)

	m = press(t, m, "tab")
	if m.list != habit.Negative {
		t.Fatalf("list after tab = %v, want Negative", m.list)
	}

	m = press(t, m, "enter")
	doc := tracker.Document()
	on := doc.SelectedDate()
	if !doc.Checked(on, habit.Negative, 0) {
		t.Errorf("Checked(%s, Negative, 0) = false, want true", on)
	}

	m = press(t, m, "tab")
	if m.list != habit.Positive {
		t.Errorf("list after second tab = %v, want Positive", m.list)
	}
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m, tracker := newTestModel(t)
	n := len(tracker.Document().Settings.Positive)

	m = press(t, m, "up", "up")
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}

	for range 2 * n {
		m = press(t, m, "j")
	}
	if m.cursor != n-1 {
		t.Errorf("cursor after overshooting down = %d, want %d", m.cursor, n-1)
	}
}

func TestModel_WindowKeysSwitchPeriod(t *testing.T) {
	testCases := []struct {
		key  string
		want date.Period
	}{
		{"w", date.Week},
		{"m", date.Month},
		{"y", date.Year},
		{"a", date.All},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			m, tracker := newTestModel(t)
			m = press(t, m, "2", tc.key)

			sel := tracker.Document().Selection()
			if sel.Period != tc.want {
				t.Errorf("Selection().Period = %v, want %v", sel.Period, tc.want)
			}
			if tc.want == date.Month || tc.want == date.Year {
				on := tracker.Document().SelectedDate()
				if sel.Year != on.Year() {
					t.Errorf("Selection().Year = %d, want %d", sel.Year, on.Year())
				}
			}
		})
	}
}

func TestModel_WindowKeysOnlyOnProgressTab(t *testing.T) {
	m, tracker := newTestModel(t)

	// Still on the checklist tab, w/m/y/a must not change the window.
	press(t, m, "y")
	if sel := tracker.Document().Selection(); sel.Period != date.Week {
		t.Errorf("Selection().Period = %v after y on checklist tab, want Week", sel.Period)
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	view := m.View()
	for _, want := range []string{"Habits", "Do", "Do Not", "Net:"} {
		if !strings.Contains(view, want) {
			t.Errorf("checklist view missing %q", want)
		}
	}

	m = press(t, m, "2")
	view = m.View()
	for _, want := range []string{"Week Progress", "Score", "day(s)"} {
		if !strings.Contains(view, want) {
			t.Errorf("progress view missing %q", want)
		}
	}
}

func TestModel_QuitKeys(t *testing.T) {
	testCases := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", keyMsg("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t)
			_, cmd := m.Update(tc.msg)
			if cmd == nil {
				t.Fatal("Update returned nil cmd, want tea.Quit")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}
