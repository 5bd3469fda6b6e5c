package planner

import "testing"

func TestProgramLevel(t *testing.T) {
	tests := []struct {
		program string
		want    int
	}{
		{"BS Computer Science", 1},
		{"MS Computer Science", 2},
		{"Master of Information Technology", 2},
		{"PhD Computer Science", 3},
		{"BS Biology", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ProgramLevel(tt.program); got != tt.want {
			t.Errorf("ProgramLevel(%q) = %d, want %d", tt.program, got, tt.want)
		}
	}
}

func TestCourseLevel(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"CMSC 11", 1},
		{"CMSC 22", 1},
		{"CMSC 200", 1},
		{"CMSC 201", 2},
		{"CMSC 300", 2},
		{"CMSC 301", 3},
		{"CMSC 400", 3},
		{"CMSC", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := CourseLevel(tt.code); got != tt.want {
			t.Errorf("CourseLevel(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

// Eligibility is monotonic: a course open to a program is open to every
// program of equal or higher level.
func TestEligibleMonotonic(t *testing.T) {
	programs := []string{
		"BS Computer Science",
		"MS Computer Science",
		"Master of Information Technology",
		"PhD Computer Science",
	}
	codes := []string{"CMSC 11", "CMSC 200", "CMSC 250", "CMSC 300", "CMSC 400"}

	for _, code := range codes {
		for _, p := range programs {
			if !Eligible(p, code) {
				continue
			}
			for _, higher := range programs {
				if ProgramLevel(higher) >= ProgramLevel(p) && !Eligible(higher, code) {
					t.Errorf("Eligible(%q, %q) holds but Eligible(%q, %q) does not", p, code, higher, code)
				}
			}
		}
	}
}

func TestEligible(t *testing.T) {
	if !Eligible("BS Computer Science", "CMSC 200") {
		t.Error("BS student should be eligible for a 200-level course")
	}
	if Eligible("BS Computer Science", "CMSC 300") {
		t.Error("BS student should not be eligible for a 300-level course")
	}
	if !Eligible("PhD Computer Science", "CMSC 400") {
		t.Error("PhD student should be eligible for a 400-level course")
	}
	if Eligible("BS Biology", "CMSC 11") {
		t.Error("unrecognized program should be eligible for nothing")
	}
}
