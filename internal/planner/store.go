package planner

import (
	"errors"
	"sort"
	"strings"

	"github.com/dangal-ics/planner-backend/internal/model"
)

// Schedule-management validation errors.
var (
	ErrEmptyName        = errors.New("schedule name cannot be empty")
	ErrNameExists       = errors.New("a schedule with this name already exists")
	ErrNoOtherSchedules = errors.New("only one schedule exists")
	ErrCannotDeleteLast = errors.New("cannot delete the last remaining schedule")
	ErrScheduleNotFound = errors.New("schedule not found")
)

// ScheduleStore owns a student's named schedules and the active-schedule
// pointer. Every operation validates before mutating, so no partial state is
// ever observable. Observers registered via Subscribe fire synchronously
// after each committed mutation. Invariants: the map is never empty, and the
// active name is always a key in it.
type ScheduleStore struct {
	schedules map[string][]model.Course
	active    string
	observers []func()
}

// NewScheduleStore builds a store from a student's persisted schedule map
// and active name, copying the contents. An empty map gains the default
// schedule; a dangling active name is created empty on the spot.
func NewScheduleStore(schedules map[string][]model.Course, active string) *ScheduleStore {
	s := &ScheduleStore{schedules: make(map[string][]model.Course, len(schedules))}
	for name, courses := range schedules {
		s.schedules[name] = append([]model.Course(nil), courses...)
	}
	if active == "" {
		active = model.DefaultScheduleName
	}
	if len(s.schedules) == 0 {
		s.schedules[active] = nil
	}
	s.active = active
	if _, ok := s.schedules[active]; !ok {
		s.schedules[active] = nil
	}
	return s
}

// Subscribe registers a callback invoked after every committed mutation.
func (s *ScheduleStore) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *ScheduleStore) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// ActiveName returns the name of the schedule currently being edited.
func (s *ScheduleStore) ActiveName() string {
	return s.active
}

// Active returns a copy of the active schedule's contents.
func (s *ScheduleStore) Active() []model.Course {
	return append([]model.Course(nil), s.schedules[s.active]...)
}

// Get returns a copy of the named schedule's contents.
func (s *ScheduleStore) Get(name string) ([]model.Course, bool) {
	courses, ok := s.schedules[name]
	if !ok {
		return nil, false
	}
	return append([]model.Course(nil), courses...), true
}

// Names enumerates the saved schedule names in sorted order.
func (s *ScheduleStore) Names() []string {
	names := make([]string, 0, len(s.schedules))
	for name := range s.schedules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetActive commits a new course list into the active schedule. This is the
// write-back step after a successful Enlistment mutation.
func (s *ScheduleStore) SetActive(courses []model.Course) {
	s.schedules[s.active] = append([]model.Course(nil), courses...)
	s.notify()
}

// SaveAs copies the active schedule's contents into a new entry under the
// given name without switching activity.
func (s *ScheduleStore) SaveAs(name string) error {
	name = strings.TrimSpace(name)
	if err := s.validateName(name); err != nil {
		return err
	}
	s.schedules[name] = append([]model.Course(nil), s.schedules[s.active]...)
	s.notify()
	return nil
}

// CreateNew creates an empty schedule under the given name and switches
// activity to it.
func (s *ScheduleStore) CreateNew(name string) error {
	name = strings.TrimSpace(name)
	if err := s.validateName(name); err != nil {
		return err
	}
	s.schedules[name] = nil
	s.active = name
	s.notify()
	return nil
}

// SwitchTo makes the named schedule active. With a single saved schedule
// there is nothing to switch to; a name not yet saved is created empty.
func (s *ScheduleStore) SwitchTo(name string) error {
	if len(s.schedules) <= 1 {
		return ErrNoOtherSchedules
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := s.schedules[name]; !ok {
		s.schedules[name] = nil
	}
	s.active = name
	s.notify()
	return nil
}

// Delete removes the named schedule. The last remaining schedule cannot be
// deleted; deleting the active one moves activity to an arbitrary survivor.
func (s *ScheduleStore) Delete(name string) error {
	if _, ok := s.schedules[name]; !ok {
		return ErrScheduleNotFound
	}
	if len(s.schedules) == 1 {
		return ErrCannotDeleteLast
	}
	delete(s.schedules, name)
	if name == s.active {
		for survivor := range s.schedules {
			s.active = survivor
			break
		}
	}
	s.notify()
	return nil
}

// Snapshot returns a deep copy of the schedule map and active name for
// persistence.
func (s *ScheduleStore) Snapshot() (map[string][]model.Course, string) {
	out := make(map[string][]model.Course, len(s.schedules))
	for name, courses := range s.schedules {
		out[name] = append([]model.Course(nil), courses...)
	}
	return out, s.active
}

func (s *ScheduleStore) validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	for existing := range s.schedules {
		if strings.EqualFold(existing, name) {
			return ErrNameExists
		}
	}
	return nil
}
