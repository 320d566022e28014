package renderer

import (
	"bytes"
	"fmt"

	habit "github.com/mtscully16/habit-tracker"
	"github.com/mtscully16/habit-tracker/date"
	md "github.com/nao1215/markdown"
)

// ChecklistMarkdown renders one day's checklist. Entries are numbered
// with the indices the check and uncheck commands take.
func ChecklistMarkdown(doc *habit.Document, on date.Date) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1(fmt.Sprintf("Habits for %s", on))

	out.H2("Do")
	out.CheckBox(checkboxes(doc, on, habit.Positive))

	out.H2("Do Not")
	out.CheckBox(checkboxes(doc, on, habit.Negative))

	out.PlainText(fmt.Sprintf("Net: %+d point(s)", doc.Net(on)))
	return out.String()
}

func checkboxes(doc *habit.Document, on date.Date, l habit.List) []md.CheckBoxSet {
	labels := doc.Settings.Labels(l)
	set := make([]md.CheckBoxSet, 0, len(labels))
	for i, label := range labels {
		set = append(set, md.CheckBoxSet{
			Checked: doc.Checked(on, l, i),
			Text:    fmt.Sprintf("%d. %s", i+1, label),
		})
	}
	return set
}
