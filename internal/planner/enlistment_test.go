package planner

import (
	"errors"
	"testing"

	"github.com/dangal-ics/planner-backend/internal/model"
)

const (
	programBS = "BS Computer Science"
	programMS = "MS Computer Science"
)

func TestAddEligibilityGate(t *testing.T) {
	e := NewEnlistment(programBS, nil)

	if err := e.Add(section("CMSC 200", "A", "TTh", "7:00-8:30")); err != nil {
		t.Fatalf("adding a 200-level course to an empty schedule: %v", err)
	}
	if err := e.Add(section("CMSC 300", "A", "WF", "7:00-8:30")); !errors.Is(err, ErrProgramIneligible) {
		t.Fatalf("adding a 300-level course as BS, got %v, want ErrProgramIneligible", err)
	}
	if n := len(e.Courses()); n != 1 {
		t.Fatalf("schedule has %d courses after rejected add, want 1", n)
	}
}

func TestAddTimeConflict(t *testing.T) {
	e := NewEnlistment(programBS, []model.Course{
		section("CMSC 22", "A", "TTh", "7:00-8:30"),
	})

	if err := e.Add(section("CMSC 100", "B", "TTh", "7:00-10:00")); !errors.Is(err, ErrTimeConflict) {
		t.Fatalf("overlapping add, got %v, want ErrTimeConflict", err)
	}
	if err := e.Add(section("CMSC 100", "B", "WF", "7:00-10:00")); err != nil {
		t.Fatalf("disjoint-day add: %v", err)
	}
}

func TestAddDuplicateKind(t *testing.T) {
	e := NewEnlistment(programBS, []model.Course{
		section("CMSC 12", "A", "Th", "9:00-10:00"),
		section("CMSC 12", "A-1", "F", "1:00-4:00"),
	})

	if err := e.Add(section("CMSC 12", "B", "M", "9:00-10:00")); !errors.Is(err, ErrDuplicateLecture) {
		t.Fatalf("second lecture, got %v, want ErrDuplicateLecture", err)
	}
	if err := e.Add(section("CMSC 12", "A-2", "M", "1:00-4:00")); !errors.Is(err, ErrDuplicateLab) {
		t.Fatalf("second lab, got %v, want ErrDuplicateLab", err)
	}
}

func TestAddSectionPairing(t *testing.T) {
	// Lab must share the lecture's base section.
	e := NewEnlistment(programBS, []model.Course{
		section("CMSC 22", "A", "Th", "9:00-10:00"),
	})
	if err := e.Add(section("CMSC 22", "B-1", "F", "1:00-4:00")); !errors.Is(err, ErrSectionMismatch) {
		t.Fatalf("lab B-1 against lecture A, got %v, want ErrSectionMismatch", err)
	}
	if err := e.Add(section("CMSC 22", "A-1", "F", "1:00-4:00")); err != nil {
		t.Fatalf("lab A-1 against lecture A: %v", err)
	}

	// Symmetric direction: lecture joining an existing lab.
	e = NewEnlistment(programBS, []model.Course{
		section("CMSC 12", "B-2", "F", "1:00-4:00"),
	})
	if err := e.Add(section("CMSC 12", "A", "Th", "9:00-10:00")); !errors.Is(err, ErrSectionMismatch) {
		t.Fatalf("lecture A against lab B-2, got %v, want ErrSectionMismatch", err)
	}
	if err := e.Add(section("CMSC 12", "B", "Th", "9:00-10:00")); err != nil {
		t.Fatalf("lecture B against lab B-2: %v", err)
	}
}

func TestCheckOrderEligibilityBeforeConflict(t *testing.T) {
	// An ineligible candidate that also conflicts reports ineligibility:
	// checks short-circuit in order.
	e := NewEnlistment(programBS, []model.Course{
		section("CMSC 22", "A", "TTh", "7:00-8:30"),
	})
	if err := e.Add(section("CMSC 301", "A", "TTh", "7:00-8:30")); !errors.Is(err, ErrProgramIneligible) {
		t.Fatalf("got %v, want ErrProgramIneligible", err)
	}
}

func TestRemove(t *testing.T) {
	e := NewEnlistment(programMS, []model.Course{
		section("CMSC 22", "A", "TTh", "7:00-8:30"),
		section("CMSC 100", "B", "WF", "9:00-10:00"),
	})

	if err := e.Remove("CMSC 22"); err != nil {
		t.Fatalf("removing an enrolled course: %v", err)
	}
	if n := len(e.Courses()); n != 1 {
		t.Fatalf("schedule has %d courses after remove, want 1", n)
	}

	// Removing an absent course is a reported no-op.
	before := e.Courses()
	if err := e.Remove("CMSC 22"); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("removing an absent course, got %v, want ErrCourseNotFound", err)
	}
	after := e.Courses()
	if len(before) != len(after) {
		t.Fatal("schedule changed by a failed remove")
	}
}

func TestTotalUnits(t *testing.T) {
	e := NewEnlistment(programBS, nil)
	if e.TotalUnits() != 0 {
		t.Fatalf("empty schedule has %d units", e.TotalUnits())
	}

	a := section("CMSC 22", "A", "Th", "9:00-10:00")
	a.Units = 3
	b := section("CMSC 12", "A", "F", "1:00-4:00")
	b.Units = 1
	for _, c := range []model.Course{a, b} {
		if err := e.Add(c); err != nil {
			t.Fatalf("Add(%s): %v", c.Code, err)
		}
	}
	if e.TotalUnits() != 4 {
		t.Fatalf("TotalUnits() = %d, want 4", e.TotalUnits())
	}
}

func TestCoursesReturnsCopy(t *testing.T) {
	e := NewEnlistment(programBS, []model.Course{
		section("CMSC 22", "A", "TTh", "7:00-8:30"),
	})
	got := e.Courses()
	got[0].Code = "HACKED"
	if e.Courses()[0].Code != "CMSC 22" {
		t.Fatal("Courses() exposed internal state")
	}
}
