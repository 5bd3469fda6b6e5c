package planner

import "github.com/dangal-ics/planner-backend/internal/model"

// Conflicts reports whether two sections occupy overlapping day-and-time
// slots. Unscheduled (TBA) sections never conflict, and sections whose time
// ranges fail to resolve are treated as non-conflicting rather than fatal —
// malformed catalog rows degrade gracefully. Intervals are half-open, so
// back-to-back sections ("7:00-8:30" then "8:30-10:00") do not conflict.
func Conflicts(a, b model.Course) bool {
	if a.Unscheduled() || b.Unscheduled() {
		return false
	}
	if !shareDay(ExpandDays(a.Days), ExpandDays(b.Days)) {
		return false
	}

	startA, endA, err := ResolveRange(a.Times)
	if err != nil {
		return false
	}
	startB, endB, err := ResolveRange(b.Times)
	if err != nil {
		return false
	}

	return startA < endB && endA > startB
}
