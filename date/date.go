// Package date provides day-granularity dates, periods and date ranges for
// habit records keyed by "YYYY-MM-DD" strings.
package date

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// KeyFormat is the format used to represent dates as day keys in ISO-8601 format.
const KeyFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
//
// Out of range values roll over following the calendar, so
// New(2026, time.January, 32) is February 1st, 2026.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// String format the date as its day key ("YYYY-MM-DD").
func (d Date) String() string { return d.time().Format(KeyFormat) }

// ShortLabel formats the date as "MM/DD", the compact form used on chart axes.
func (d Date) ShortLabel() string { return d.time().Format("01/02") }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseKey parses a day key of the form "YYYY-MM-DD" and never fails.
//
// Missing or non-numeric month and day default to 1, a non-numeric year
// defaults to 0, and out of range numbers roll over following the calendar.
// Day records carry keys from old schema versions and hand-edited files, so
// reading one must always yield a usable date.
func ParseKey(key string) Date {
	parts := strings.SplitN(strings.TrimSpace(key), "-", 3)
	y, m, d := 0, 1, 1
	if v, err := strconv.Atoi(parts[0]); err == nil {
		y = v
	}
	if len(parts) > 1 {
		if v, err := strconv.Atoi(parts[1]); err == nil {
			m = v
		}
	}
	if len(parts) > 2 {
		if v, err := strconv.Atoi(parts[2]); err == nil {
			d = v
		}
	}
	return New(y, time.Month(m), d)
}

// Valid reports whether key is a well formed day key: zero padded
// "YYYY-MM-DD" naming a real calendar date.
func Valid(key string) bool {
	_, err := time.Parse(KeyFormat, key)
	return err == nil
}

// StartOf returns the date of begining of a given period.
//
// Weeks start on Monday. There is no start for the All period, it is bounded
// by the data it spans.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Week:
		weekday := d.Weekday() // time.Sunday = 0, ..., time.Saturday = 6
		offset := int(weekday - time.Monday)
		for offset < 0 {
			offset += 7
		}
		return d.Add(-offset)
	case Month:
		return New(d.Year(), d.Month(), 1)
	case Year:
		return New(d.Year(), time.January, 1)
	default:
		panic("unbounded period")
	}
}

// EndOf returns the date of end of a given period.
//
// Weeks end on Sunday. Month ends are computed by calendar rollover (day 0 of
// the next month) so leap years need no special case.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Week:
		weekday := d.Weekday() // time.Sunday = 0, ..., time.Saturday = 6
		offset := int(7 - weekday)
		for offset >= 7 {
			offset -= 7
		}
		return d.Add(offset)
	case Month:
		return New(d.Year(), d.Month()+1, 0)
	case Year:
		return New(d.Year()+1, time.January, 0)
	default:
		panic("unbounded period")
	}
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}
func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
