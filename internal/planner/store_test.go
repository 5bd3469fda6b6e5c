package planner

import (
	"errors"
	"testing"

	"github.com/dangal-ics/planner-backend/internal/model"
)

func newTestStore() *ScheduleStore {
	return NewScheduleStore(map[string][]model.Course{
		model.DefaultScheduleName: {section("CMSC 22", "A", "TTh", "7:00-8:30")},
	}, model.DefaultScheduleName)
}

// checkInvariants asserts the store invariants: the map is never empty and
// the active name is always a key.
func checkInvariants(t *testing.T, s *ScheduleStore) {
	t.Helper()
	names := s.Names()
	if len(names) == 0 {
		t.Fatal("schedule map is empty")
	}
	if _, ok := s.Get(s.ActiveName()); !ok {
		t.Fatalf("active name %q is not a key in the schedule map", s.ActiveName())
	}
}

func TestNewScheduleStoreRepairs(t *testing.T) {
	// Empty persisted state gains the default schedule.
	s := NewScheduleStore(nil, "")
	if s.ActiveName() != model.DefaultScheduleName {
		t.Fatalf("active = %q, want %q", s.ActiveName(), model.DefaultScheduleName)
	}
	checkInvariants(t, s)

	// A dangling active name is created empty on first reference.
	s = NewScheduleStore(map[string][]model.Course{"Plan A": nil}, "Plan B")
	if s.ActiveName() != "Plan B" {
		t.Fatalf("active = %q, want Plan B", s.ActiveName())
	}
	checkInvariants(t, s)
}

func TestSaveAs(t *testing.T) {
	s := newTestStore()

	if err := s.SaveAs("Plan A"); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if s.ActiveName() != model.DefaultScheduleName {
		t.Fatal("SaveAs must not switch the active schedule")
	}
	saved, ok := s.Get("Plan A")
	if !ok {
		t.Fatal("saved schedule missing")
	}
	if len(saved) != 1 || saved[0].Code != "CMSC 22" {
		t.Fatalf("saved contents = %v, want copy of active", saved)
	}

	// The copy is independent of the active schedule.
	s.SetActive(nil)
	if saved, _ := s.Get("Plan A"); len(saved) != 1 {
		t.Fatal("saved schedule aliases the active one")
	}

	if err := s.SaveAs("Plan A"); !errors.Is(err, ErrNameExists) {
		t.Fatalf("second SaveAs, got %v, want ErrNameExists", err)
	}
	if err := s.SaveAs("plan a"); !errors.Is(err, ErrNameExists) {
		t.Fatalf("case-insensitive duplicate, got %v, want ErrNameExists", err)
	}
	if err := s.SaveAs("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name, got %v, want ErrEmptyName", err)
	}
}

func TestCreateNew(t *testing.T) {
	s := newTestStore()

	if err := s.CreateNew("Backup Plan"); err != nil {
		t.Fatalf("CreateNew: %v", err)
	}
	if s.ActiveName() != "Backup Plan" {
		t.Fatalf("active = %q, want Backup Plan", s.ActiveName())
	}
	if len(s.Active()) != 0 {
		t.Fatal("new schedule must start empty")
	}
	if err := s.CreateNew("backup plan"); !errors.Is(err, ErrNameExists) {
		t.Fatalf("duplicate name, got %v, want ErrNameExists", err)
	}
	checkInvariants(t, s)
}

func TestSwitchTo(t *testing.T) {
	s := newTestStore()

	if err := s.SwitchTo("Anything"); !errors.Is(err, ErrNoOtherSchedules) {
		t.Fatalf("switch with one schedule, got %v, want ErrNoOtherSchedules", err)
	}

	if err := s.SaveAs("Plan A"); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := s.SwitchTo("Plan A"); err != nil {
		t.Fatalf("SwitchTo: %v", err)
	}
	if s.ActiveName() != "Plan A" {
		t.Fatalf("active = %q, want Plan A", s.ActiveName())
	}

	// Switching to an unsaved name silently creates it empty.
	if err := s.SwitchTo("Plan B"); err != nil {
		t.Fatalf("SwitchTo new name: %v", err)
	}
	if len(s.Active()) != 0 {
		t.Fatal("silently created schedule must be empty")
	}
	checkInvariants(t, s)
}

func TestDelete(t *testing.T) {
	s := newTestStore()

	if err := s.Delete(model.DefaultScheduleName); !errors.Is(err, ErrCannotDeleteLast) {
		t.Fatalf("deleting the only schedule, got %v, want ErrCannotDeleteLast", err)
	}

	if err := s.SaveAs("Plan A"); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := s.Delete("Nope"); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("deleting unknown name, got %v, want ErrScheduleNotFound", err)
	}

	// Deleting the active schedule moves activity to a survivor.
	if err := s.Delete(model.DefaultScheduleName); err != nil {
		t.Fatalf("Delete active: %v", err)
	}
	if s.ActiveName() != "Plan A" {
		t.Fatalf("active = %q, want Plan A", s.ActiveName())
	}
	checkInvariants(t, s)
}

// After any sequence of schedule operations the invariants hold.
func TestStoreInvariantSequence(t *testing.T) {
	s := newTestStore()
	ops := []func() error{
		func() error { return s.SaveAs("Plan A") },
		func() error { return s.CreateNew("Plan B") },
		func() error { return s.SwitchTo("Plan A") },
		func() error { return s.Delete("Plan B") },
		func() error { return s.Delete("Plan A") },
		func() error { return s.Delete(model.DefaultScheduleName) },
		func() error { return s.CreateNew("Plan C") },
		func() error { return s.Delete(s.ActiveName()) },
	}
	for _, op := range ops {
		_ = op() // some are expected to fail; invariants must hold regardless
		checkInvariants(t, s)
	}
}

func TestObserversFireAfterCommit(t *testing.T) {
	s := newTestStore()
	fired := 0
	s.Subscribe(func() { fired++ })

	if err := s.SaveAs("Plan A"); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if err := s.SwitchTo("Plan A"); err != nil {
		t.Fatalf("SwitchTo: %v", err)
	}
	s.SetActive([]model.Course{section("CMSC 100", "B", "WF", "9:00-10:00")})
	if err := s.Delete("Plan A"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if fired != 4 {
		t.Fatalf("observer fired %d times, want 4", fired)
	}

	// Rejected operations do not notify.
	if err := s.SaveAs(""); err == nil {
		t.Fatal("expected validation failure")
	}
	if fired != 4 {
		t.Fatalf("observer fired on a rejected operation")
	}
}
