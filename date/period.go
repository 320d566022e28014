package date

import (
	"fmt"
	"strings"
)

// Period is one of the windows a habit report can cover.
type Period int

func (p Period) String() string {
	switch p {
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	case All:
		return "all"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

const (
	Week Period = iota
	Month
	Year
	All
)

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	case "year", "yearly":
		return Year, nil
	case "all", "ever":
		return All, nil
	default:
		return Week, fmt.Errorf("unknown period %s", p)
	}
}
