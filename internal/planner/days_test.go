package planner

import (
	"reflect"
	"testing"
)

func TestExpandDays(t *testing.T) {
	tests := []struct {
		token string
		want  []Weekday
	}{
		{"TTh", []Weekday{Tuesday, Thursday}},
		{"tth", []Weekday{Tuesday, Thursday}},
		{"WF", []Weekday{Wednesday, Friday}},
		{"M", []Weekday{Monday}},
		{"Mon", []Weekday{Monday}},
		{"T", []Weekday{Tuesday}},
		{"Tues", []Weekday{Tuesday}},
		{"W", []Weekday{Wednesday}},
		{"Th", []Weekday{Thursday}},
		{"Thurs", []Weekday{Thursday}},
		{"F", []Weekday{Friday}},
		{"fri", []Weekday{Friday}},
		{"S", []Weekday{Saturday}},
		{" Sat ", []Weekday{Saturday}},
		{"", nil},
		{"TBA", nil},
		{"MWF", nil},
		{"Sunday", nil},
	}

	for _, tt := range tests {
		if got := ExpandDays(tt.token); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ExpandDays(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestShareDay(t *testing.T) {
	tth := ExpandDays("TTh")
	wf := ExpandDays("WF")
	th := ExpandDays("Th")

	if shareDay(tth, wf) {
		t.Error("TTh and WF should not share a day")
	}
	if !shareDay(tth, th) {
		t.Error("TTh and Th should share Thursday")
	}
	if shareDay(nil, tth) {
		t.Error("empty set shares no day")
	}
}
