package model

// AddCourseRequest identifies a catalog section to enlist in.
type AddCourseRequest struct {
	Code    string `json:"code" binding:"required,max=32"`
	Section string `json:"section" binding:"required,max=16"`
}

// ScheduleNameRequest carries a schedule name for create/save-as/switch.
type ScheduleNameRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// ScheduleView is the active-schedule payload rendered by the dashboard.
type ScheduleView struct {
	Name       string   `json:"name"`
	Courses    []Course `json:"courses"`
	TotalUnits int      `json:"total_units"`
}

// CalendarBlock is one rendered cell span on the weekly calendar grid.
// Start and End are 24-hour wall-clock hours; TBA and unparseable sections
// produce no blocks.
type CalendarBlock struct {
	Day     string `json:"day"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Code    string `json:"code"`
	Section string `json:"section"`
	Room    string `json:"room"`
}

// ScheduleComparison holds two schedules side by side for the compare view.
type ScheduleComparison struct {
	Left  ComparisonSide `json:"left"`
	Right ComparisonSide `json:"right"`
}

// ComparisonSide is one half of a schedule comparison.
type ComparisonSide struct {
	Name       string          `json:"name"`
	Courses    []Course        `json:"courses"`
	TotalUnits int             `json:"total_units"`
	Calendar   []CalendarBlock `json:"calendar"`
}
