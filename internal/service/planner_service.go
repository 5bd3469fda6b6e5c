package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dangal-ics/planner-backend/internal/config"
	"github.com/dangal-ics/planner-backend/internal/model"
	"github.com/dangal-ics/planner-backend/internal/planner"
	"github.com/dangal-ics/planner-backend/internal/repository"
	ws "github.com/dangal-ics/planner-backend/internal/websocket"
)

// ErrUnknownSection marks an add request naming a section the catalog does
// not offer.
var ErrUnknownSection = errors.New("no such section in the catalog")

// PlannerService orchestrates the enlistment engine around persistence and
// change notification. Each operation loads the student, runs the engine on
// copies, and commits the resulting snapshot back into the student row —
// no component holds a live reference to another's schedule list.
type PlannerService struct {
	studentRepo *repository.StudentRepository
	catalog     *CatalogService
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(studentRepo *repository.StudentRepository, catalog *CatalogService, rdb *redis.Client, log zerolog.Logger) *PlannerService {
	return &PlannerService{
		studentRepo: studentRepo,
		catalog:     catalog,
		rdb:         rdb,
		log:         log.With().Str("component", "planner_service").Logger(),
	}
}

// withStore runs fn against a ScheduleStore built from the student's
// persisted state. If fn commits any mutation, the snapshot is written back
// to Postgres and a change event is published for connected views.
func (s *PlannerService) withStore(ctx context.Context, studentID int, fn func(student *model.Student, store *planner.ScheduleStore) error) (*planner.ScheduleStore, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load student: %w", err)
	}

	store := planner.NewScheduleStore(student.Schedules, student.ActiveSchedule)
	changed := false
	store.Subscribe(func() { changed = true })

	if err := fn(student, store); err != nil {
		return nil, err
	}

	if changed {
		schedules, active := store.Snapshot()
		if err := s.studentRepo.UpdateSchedules(ctx, studentID, schedules, active); err != nil {
			return nil, fmt.Errorf("persist schedules: %w", err)
		}
		s.publishChange(ctx, studentID, active)
	}
	return store, nil
}

// publishChange notifies connected calendar and comparison views. Delivery
// is best-effort: a Redis hiccup must not fail a committed mutation.
func (s *PlannerService) publishChange(ctx context.Context, studentID int, active string) {
	payload, err := json.Marshal(ws.ScheduleChangedEvent{Event: ws.EventScheduleChanged, Active: active})
	if err != nil {
		return
	}
	channel := config.CacheKey.ScheduleChannel(studentID)
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Warn().Err(err).Int("student_id", studentID).Msg("Change notification failed")
	}
}

func scheduleView(store *planner.ScheduleStore, program string) *model.ScheduleView {
	courses := store.Active()
	return &model.ScheduleView{
		Name:       store.ActiveName(),
		Courses:    courses,
		TotalUnits: planner.NewEnlistment(program, courses).TotalUnits(),
	}
}

// ActiveSchedule returns the active schedule's contents, name and units.
func (s *PlannerService) ActiveSchedule(ctx context.Context, studentID int) (*model.ScheduleView, error) {
	var view *model.ScheduleView
	_, err := s.withStore(ctx, studentID, func(student *model.Student, store *planner.ScheduleStore) error {
		view = scheduleView(store, student.Program)
		return nil
	})
	return view, err
}

// Calendar returns the active schedule flattened into weekly calendar blocks.
func (s *PlannerService) Calendar(ctx context.Context, studentID int) ([]model.CalendarBlock, error) {
	var blocks []model.CalendarBlock
	_, err := s.withStore(ctx, studentID, func(_ *model.Student, store *planner.ScheduleStore) error {
		blocks = planner.CalendarBlocks(store.Active())
		return nil
	})
	return blocks, err
}

// ScheduleNames enumerates the student's saved schedules and the active name.
func (s *PlannerService) ScheduleNames(ctx context.Context, studentID int) ([]string, string, error) {
	var names []string
	var active string
	_, err := s.withStore(ctx, studentID, func(_ *model.Student, store *planner.ScheduleStore) error {
		names = store.Names()
		active = store.ActiveName()
		return nil
	})
	return names, active, err
}

// AddCourse runs the full enlistment pipeline for a catalog section and, on
// success, commits the grown schedule. Engine rejections surface unchanged.
func (s *PlannerService) AddCourse(ctx context.Context, studentID int, code, section string) (*model.ScheduleView, error) {
	candidate, err := s.catalog.FindSection(ctx, code, section)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownSection
		}
		return nil, fmt.Errorf("find section: %w", err)
	}

	var view *model.ScheduleView
	_, err = s.withStore(ctx, studentID, func(student *model.Student, store *planner.ScheduleStore) error {
		enl := planner.NewEnlistment(student.Program, store.Active())
		if err := enl.Add(*candidate); err != nil {
			return err
		}
		store.SetActive(enl.Courses())
		view = scheduleView(store, student.Program)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int("student_id", studentID).
		Str("code", candidate.Code).
		Str("section", candidate.Section).
		Msg("Course added")
	return view, nil
}

// RemoveCourse drops the first section matching the course code from the
// active schedule.
func (s *PlannerService) RemoveCourse(ctx context.Context, studentID int, code string) (*model.ScheduleView, error) {
	var view *model.ScheduleView
	_, err := s.withStore(ctx, studentID, func(student *model.Student, store *planner.ScheduleStore) error {
		enl := planner.NewEnlistment(student.Program, store.Active())
		if err := enl.Remove(code); err != nil {
			return err
		}
		store.SetActive(enl.Courses())
		view = scheduleView(store, student.Program)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("student_id", studentID).Str("code", code).Msg("Course removed")
	return view, nil
}

// SaveAs copies the active schedule under a new name.
func (s *PlannerService) SaveAs(ctx context.Context, studentID int, name string) error {
	_, err := s.withStore(ctx, studentID, func(_ *model.Student, store *planner.ScheduleStore) error {
		return store.SaveAs(name)
	})
	return err
}

// CreateSchedule creates a new empty schedule and makes it active.
func (s *PlannerService) CreateSchedule(ctx context.Context, studentID int, name string) error {
	_, err := s.withStore(ctx, studentID, func(_ *model.Student, store *planner.ScheduleStore) error {
		return store.CreateNew(name)
	})
	return err
}

// SwitchSchedule makes the named schedule active.
func (s *PlannerService) SwitchSchedule(ctx context.Context, studentID int, name string) error {
	_, err := s.withStore(ctx, studentID, func(_ *model.Student, store *planner.ScheduleStore) error {
		return store.SwitchTo(name)
	})
	return err
}

// DeleteSchedule removes the named schedule.
func (s *PlannerService) DeleteSchedule(ctx context.Context, studentID int, name string) error {
	_, err := s.withStore(ctx, studentID, func(_ *model.Student, store *planner.ScheduleStore) error {
		return store.Delete(name)
	})
	return err
}

// Compare lays two saved schedules side by side with unit totals and
// calendar blocks for the comparison view.
func (s *PlannerService) Compare(ctx context.Context, studentID int, left, right string) (*model.ScheduleComparison, error) {
	var cmp *model.ScheduleComparison
	_, err := s.withStore(ctx, studentID, func(student *model.Student, store *planner.ScheduleStore) error {
		leftSide, err := comparisonSide(store, student.Program, left)
		if err != nil {
			return err
		}
		rightSide, err := comparisonSide(store, student.Program, right)
		if err != nil {
			return err
		}
		cmp = &model.ScheduleComparison{Left: *leftSide, Right: *rightSide}
		return nil
	})
	return cmp, err
}

func comparisonSide(store *planner.ScheduleStore, program, name string) (*model.ComparisonSide, error) {
	courses, ok := store.Get(name)
	if !ok {
		return nil, planner.ErrScheduleNotFound
	}
	return &model.ComparisonSide{
		Name:       name,
		Courses:    courses,
		TotalUnits: planner.NewEnlistment(program, courses).TotalUnits(),
		Calendar:   planner.CalendarBlocks(courses),
	}, nil
}
