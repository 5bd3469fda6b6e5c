package model

import "strings"

// SectionKind distinguishes lecture and lab sections.
type SectionKind string

const (
	SectionLecture SectionKind = "lecture"
	SectionLab     SectionKind = "lab"
)

// Course is one offered section of a course for the semester. Values are
// loaded from the catalog and never mutated; schedules only reference them.
type Course struct {
	Code        string      `json:"code"`
	Title       string      `json:"title"`
	Units       int         `json:"units"`
	Section     string      `json:"section"`
	Kind        SectionKind `json:"kind"`
	BaseSection string      `json:"base_section"`
	Days        string      `json:"days"`
	Times       string      `json:"times"`
	Room        string      `json:"room"`
	Description string      `json:"description,omitempty"`
}

// ParseSectionLabel classifies a raw section label. A label containing a
// hyphen ("B-1") is a lab; the part before the first hyphen is the base
// section it pairs with. Any other label is a lecture and is its own base.
func ParseSectionLabel(label string) (SectionKind, string) {
	if base, _, found := strings.Cut(label, "-"); found {
		return SectionLab, base
	}
	return SectionLecture, label
}

// NewCourse builds a Course from raw catalog fields, resolving the section
// kind once at ingestion.
func NewCourse(code, title string, units int, section, days, times, room, description string) Course {
	kind, base := ParseSectionLabel(section)
	return Course{
		Code:        code,
		Title:       title,
		Units:       units,
		Section:     section,
		Kind:        kind,
		BaseSection: base,
		Days:        days,
		Times:       times,
		Room:        room,
		Description: description,
	}
}

// Unscheduled reports whether the section has no fixed meeting pattern.
// Unscheduled sections never conflict and are not drawn on calendars.
func (c Course) Unscheduled() bool {
	return strings.EqualFold(strings.TrimSpace(c.Days), "TBA")
}
