package planner

import (
	"strings"

	"github.com/dangal-ics/planner-backend/internal/model"
)

// CalendarBlocks flattens a course list into per-day hour spans for the
// weekly calendar and comparison views. Unscheduled sections and sections
// whose time range cannot be resolved are skipped rather than reported —
// the calendar simply leaves them undrawn.
func CalendarBlocks(courses []model.Course) []model.CalendarBlock {
	var blocks []model.CalendarBlock
	for _, c := range courses {
		if c.Unscheduled() || strings.TrimSpace(c.Times) == "" {
			continue
		}
		start, end, err := ResolveRange(c.Times)
		if err != nil {
			continue
		}
		for _, day := range ExpandDays(c.Days) {
			blocks = append(blocks, model.CalendarBlock{
				Day:     string(day),
				Start:   start,
				End:     end,
				Code:    c.Code,
				Section: c.Section,
				Room:    c.Room,
			})
		}
	}
	return blocks
}
