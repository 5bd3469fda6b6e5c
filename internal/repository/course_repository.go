package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dangal-ics/planner-backend/internal/model"
)

// CourseRepository reads the static course catalog: the semester's section
// offerings and the per-program curricula.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func collectCourses(rows pgx.Rows) ([]model.Course, error) {
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var code, title, section, days, times, room, description string
		var units int
		if err := rows.Scan(&code, &title, &units, &section, &days, &times, &room, &description); err != nil {
			return nil, err
		}
		// Section kind is resolved once here, at ingestion.
		courses = append(courses, model.NewCourse(code, title, units, section, days, times, room, description))
	}
	return courses, rows.Err()
}

// GetOfferings retrieves every offered section for the semester.
func (r *CourseRepository) GetOfferings(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code, title, units, section, days, times, room, description
		 FROM courses ORDER BY code, section`)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

// GetOfferingsByProgram retrieves the offered sections whose course codes
// appear in a program's curriculum.
func (r *CourseRepository) GetOfferingsByProgram(ctx context.Context, program string) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.code, c.title, c.units, c.section, c.days, c.times, c.room, c.description
		 FROM courses c
		 JOIN program_courses pc ON pc.course_code = c.code
		 WHERE pc.program = $1
		 ORDER BY c.code, c.section`, program)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

// GetProgramCurriculum retrieves a program's course list (codes, titles,
// units, descriptions — no meeting sections).
func (r *CourseRepository) GetProgramCurriculum(ctx context.Context, program string) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT c.code, c.title, c.units, '' AS section, '' AS days, '' AS times, '' AS room, c.description
		 FROM courses c
		 JOIN program_courses pc ON pc.course_code = c.code
		 WHERE pc.program = $1
		 ORDER BY c.code`, program)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

// FindSection looks up one offered section by course code and section label.
func (r *CourseRepository) FindSection(ctx context.Context, code, section string) (*model.Course, error) {
	var title, days, times, room, description string
	var units int
	err := r.pool.QueryRow(ctx,
		`SELECT title, units, days, times, room, description
		 FROM courses WHERE code = $1 AND section = $2`, code, section,
	).Scan(&title, &units, &days, &times, &room, &description)
	if err != nil {
		return nil, err
	}
	course := model.NewCourse(code, title, units, section, days, times, room, description)
	return &course, nil
}

// CreateOffering inserts one catalog section. Used by the seeder.
func (r *CourseRepository) CreateOffering(ctx context.Context, c model.Course) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO courses (code, title, units, section, days, times, room, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (code, section) DO NOTHING`,
		c.Code, c.Title, c.Units, c.Section, c.Days, c.Times, c.Room, c.Description)
	return err
}

// AddToProgram links a course code into a program's curriculum. Used by the
// seeder.
func (r *CourseRepository) AddToProgram(ctx context.Context, program, courseCode string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO program_courses (program, course_code) VALUES ($1, $2)
		 ON CONFLICT (program, course_code) DO NOTHING`,
		program, courseCode)
	return err
}
