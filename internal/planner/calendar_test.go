package planner

import (
	"testing"

	"github.com/dangal-ics/planner-backend/internal/model"
)

func TestCalendarBlocks(t *testing.T) {
	courses := []model.Course{
		section("CMSC 22", "A", "TTh", "7:00-8:30"),
		section("CMSC 12", "A-1", "F", "1:00-4:00"),
		section("CMSC 198", "B", "TBA", "TBA"),
		section("CMSC 131", "C", "W", "broken"),
	}

	blocks := CalendarBlocks(courses)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3 (two TTh spans plus one lab)", len(blocks))
	}

	want := []model.CalendarBlock{
		{Day: "Tue", Start: 7, End: 8, Code: "CMSC 22", Section: "A", Room: "ICS MH"},
		{Day: "Thu", Start: 7, End: 8, Code: "CMSC 22", Section: "A", Room: "ICS MH"},
		{Day: "Fri", Start: 13, End: 16, Code: "CMSC 12", Section: "A-1", Room: "ICS MH"},
	}
	for i, b := range blocks {
		if b != want[i] {
			t.Errorf("block %d = %+v, want %+v", i, b, want[i])
		}
	}
}

func TestCalendarBlocksEmpty(t *testing.T) {
	if blocks := CalendarBlocks(nil); blocks != nil {
		t.Fatalf("empty schedule produced %v", blocks)
	}
}
