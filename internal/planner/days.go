package planner

import "strings"

// Weekday is a class-meeting day. Classes run Monday through Saturday.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
)

// ExpandDays maps a compact day-pattern token to the weekdays a section
// meets. Tokens are matched case-insensitively; unrecognized tokens (and
// "TBA", which callers must screen out before conflict checks) expand to
// nothing.
func ExpandDays(token string) []Weekday {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "tth":
		return []Weekday{Tuesday, Thursday}
	case "wf":
		return []Weekday{Wednesday, Friday}
	case "m", "mon":
		return []Weekday{Monday}
	case "t", "tue", "tues":
		return []Weekday{Tuesday}
	case "w", "wed":
		return []Weekday{Wednesday}
	case "th", "thu", "thurs":
		return []Weekday{Thursday}
	case "f", "fri":
		return []Weekday{Friday}
	case "s", "sat":
		return []Weekday{Saturday}
	default:
		return nil
	}
}

// shareDay reports whether the two day sets intersect.
func shareDay(a, b []Weekday) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}
