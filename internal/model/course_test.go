package model

import "testing"

func TestParseSectionLabel(t *testing.T) {
	tests := []struct {
		label    string
		wantKind SectionKind
		wantBase string
	}{
		{"A", SectionLecture, "A"},
		{"B", SectionLecture, "B"},
		{"A-1", SectionLab, "A"},
		{"B-2", SectionLab, "B"},
		{"C-1-X", SectionLab, "C"},
		{"", SectionLecture, ""},
	}

	for _, tt := range tests {
		kind, base := ParseSectionLabel(tt.label)
		if kind != tt.wantKind || base != tt.wantBase {
			t.Errorf("ParseSectionLabel(%q) = %v,%q, want %v,%q",
				tt.label, kind, base, tt.wantKind, tt.wantBase)
		}
	}
}

func TestNewCourseResolvesKind(t *testing.T) {
	lec := NewCourse("CMSC 22", "Object-Oriented Programming", 3, "A", "TTh", "7:00-8:30", "ICS MH", "")
	if lec.Kind != SectionLecture || lec.BaseSection != "A" {
		t.Errorf("lecture section parsed as %v/%q", lec.Kind, lec.BaseSection)
	}

	lab := NewCourse("CMSC 22", "Object-Oriented Programming", 1, "A-1", "F", "1:00-4:00", "ICS PCLab", "")
	if lab.Kind != SectionLab || lab.BaseSection != "A" {
		t.Errorf("lab section parsed as %v/%q", lab.Kind, lab.BaseSection)
	}
}

func TestUnscheduled(t *testing.T) {
	tba := NewCourse("CMSC 198", "Special Topics", 3, "B", "TBA", "TBA", "TBA", "")
	if !tba.Unscheduled() {
		t.Error("TBA section should be unscheduled")
	}
	if got := NewCourse("CMSC 11", "Intro", 3, "A", "tba ", "7:00-8:30", "", "").Unscheduled(); !got {
		t.Error("TBA matching is case-insensitive")
	}
	if NewCourse("CMSC 11", "Intro", 3, "A", "MWF", "7:00-8:30", "", "").Unscheduled() {
		t.Error("scheduled section misreported as unscheduled")
	}
}

func TestFullName(t *testing.T) {
	s := Student{FirstName: "Vince", MiddleName: "Solano", LastName: "Magwili"}
	if s.FullName() != "Vince Solano Magwili" {
		t.Errorf("FullName() = %q", s.FullName())
	}
	s.MiddleName = ""
	if s.FullName() != "Vince Magwili" {
		t.Errorf("FullName() without middle = %q", s.FullName())
	}
}
