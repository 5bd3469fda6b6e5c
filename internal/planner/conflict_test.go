package planner

import (
	"testing"

	"github.com/dangal-ics/planner-backend/internal/model"
)

func section(code, label, days, times string) model.Course {
	return model.NewCourse(code, code+" title", 3, label, days, times, "ICS MH", "")
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Course
		want bool
	}{
		{
			name: "disjoint days never conflict",
			a:    section("CMSC 22", "A", "TTh", "7:00-8:30"),
			b:    section("CMSC 100", "B", "WF", "7:00-8:30"),
			want: false,
		},
		{
			name: "same day overlapping hours conflict",
			a:    section("CMSC 22", "A", "TTh", "7:00-8:30"),
			b:    section("CMSC 100", "B", "TTh", "7:00-10:00"),
			want: true,
		},
		{
			// [7,9) against [9,10): shared end/start hour, half-open.
			name: "abutting intervals do not conflict",
			a:    section("CMSC 22", "A", "TTh", "7:00-9:00"),
			b:    section("CMSC 100", "B", "TTh", "9:00-10:00"),
			want: false,
		},
		{
			name: "gap between intervals does not conflict",
			a:    section("CMSC 22", "A", "TTh", "7:00-8:30"),
			b:    section("CMSC 100", "B", "TTh", "9:00-10:00"),
			want: false,
		},
		{
			name: "single day token intersects pair token",
			a:    section("CMSC 22", "A", "Th", "9:00-11:00"),
			b:    section("CMSC 100", "B", "TTh", "10:00-12:00"),
			want: true,
		},
		{
			name: "morning versus afternoon on the same day",
			a:    section("CMSC 22", "A", "WF", "9:00-11:00"),
			b:    section("CMSC 12", "B-1", "WF", "1:00-4:00"),
			want: false,
		},
		{
			name: "afternoon lab overlaps afternoon lecture",
			a:    section("CMSC 22", "A", "F", "2:30-4:00"),
			b:    section("CMSC 12", "B-1", "F", "1:00-4:00"),
			want: true,
		},
		{
			name: "lab ending at 7 PM overlaps late lecture",
			a:    section("CMSC 12", "B-1", "W", "4:00-7:00"),
			b:    section("CMSC 131", "C", "W", "5:00-6:00"),
			want: true,
		},
		{
			name: "TBA sections never conflict",
			a:    section("CMSC 22", "A", "TBA", "7:00-8:30"),
			b:    section("CMSC 100", "B", "TTh", "7:00-8:30"),
			want: false,
		},
		{
			name: "malformed time degrades to no conflict",
			a:    section("CMSC 22", "A", "TTh", "whenever"),
			b:    section("CMSC 100", "B", "TTh", "7:00-8:30"),
			want: false,
		},
		{
			name: "unparseable day token yields no conflict",
			a:    section("CMSC 22", "A", "MTWTHF", "7:00-8:30"),
			b:    section("CMSC 100", "B", "TTh", "7:00-8:30"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Conflicts(tt.a, tt.b); got != tt.want {
				t.Errorf("Conflicts() = %v, want %v", got, tt.want)
			}
			// The test is symmetric in its arguments.
			if got := Conflicts(tt.b, tt.a); got != tt.want {
				t.Errorf("Conflicts() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
