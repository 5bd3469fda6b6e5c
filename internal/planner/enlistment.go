package planner

import (
	"errors"

	"github.com/dangal-ics/planner-backend/internal/model"
)

// Enlistment validation errors, surfaced verbatim to the user.
var (
	ErrProgramIneligible = errors.New("course is not available for this program")
	ErrTimeConflict      = errors.New("course conflicts with the existing schedule")
	ErrDuplicateLecture  = errors.New("already enrolled in a lecture section for this course")
	ErrDuplicateLab      = errors.New("already enrolled in a lab section for this course")
	ErrSectionMismatch   = errors.New("lecture and lab sections must match")
	ErrCourseNotFound    = errors.New("course not found in schedule")
)

// Enlistment validates and applies mutations against a single schedule's
// course list. It owns a private copy; callers read the result back through
// Courses and commit it explicitly (no live aliasing of the student's map).
type Enlistment struct {
	program string
	courses []model.Course
}

// NewEnlistment builds an Enlistment for a student in the given program,
// seeded with a copy of the schedule's current contents.
func NewEnlistment(program string, courses []model.Course) *Enlistment {
	return &Enlistment{
		program: program,
		courses: append([]model.Course(nil), courses...),
	}
}

// Courses returns a copy of the current course list.
func (e *Enlistment) Courses() []model.Course {
	return append([]model.Course(nil), e.courses...)
}

// TotalUnits sums the unit counts of all enrolled sections.
func (e *Enlistment) TotalUnits() int {
	total := 0
	for _, c := range e.courses {
		total += c.Units
	}
	return total
}

// Add runs the full admission pipeline for a candidate section and appends
// it on success. Checks run in order and short-circuit on the first failure:
// program eligibility, time conflict, duplicate section kind, then
// lecture/lab section pairing.
func (e *Enlistment) Add(candidate model.Course) error {
	if !Eligible(e.program, candidate.Code) {
		return ErrProgramIneligible
	}

	for _, c := range e.courses {
		if Conflicts(candidate, c) {
			return ErrTimeConflict
		}
	}

	var lecture, lab *model.Course
	for i := range e.courses {
		c := &e.courses[i]
		if c.Code != candidate.Code {
			continue
		}
		if c.Kind == model.SectionLab {
			lab = c
		} else {
			lecture = c
		}
	}

	if candidate.Kind == model.SectionLecture && lecture != nil {
		return ErrDuplicateLecture
	}
	if candidate.Kind == model.SectionLab && lab != nil {
		return ErrDuplicateLab
	}

	// A lab pairs with the lecture whose label matches its base section.
	if candidate.Kind == model.SectionLab && lecture != nil && candidate.BaseSection != lecture.Section {
		return ErrSectionMismatch
	}
	if candidate.Kind == model.SectionLecture && lab != nil && candidate.Section != lab.BaseSection {
		return ErrSectionMismatch
	}

	e.courses = append(e.courses, candidate)
	return nil
}

// Remove drops the first section matching the given course code. Removing
// an absent course leaves the list unchanged and reports ErrCourseNotFound.
func (e *Enlistment) Remove(code string) error {
	for i, c := range e.courses {
		if c.Code == code {
			e.courses = append(e.courses[:i], e.courses[i+1:]...)
			return nil
		}
	}
	return ErrCourseNotFound
}
