// Package renderer turns habit reports into markdown strings.
//
// The habits command pipes these through a terminal markdown renderer,
// but the output stays plain markdown so it can as well be written to a
// file or pasted into notes.
package renderer

import "github.com/mtscully16/habit-tracker/date"

// periodTitle returns the human title of a report window.
func periodTitle(p date.Period) string {
	switch p {
	case date.Month:
		return "Month"
	case date.Year:
		return "Year"
	case date.All:
		return "All Time"
	default:
		return "Week"
	}
}
