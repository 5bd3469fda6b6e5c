package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dangal-ics/planner-backend/internal/model"
)

var ErrDuplicateEmail = errors.New("student with this email already exists")

const studentColumns = `id, first_name, middle_name, last_name, email, password_hash,
	 program, profile_picture_path, schedules, active_schedule, created_at, updated_at`

// StudentRepository handles student data access. The named-schedule map and
// active-schedule name are stored as a JSONB column and round-trip through
// the model types unchanged.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.FirstName, &s.MiddleName, &s.LastName, &s.Email,
		&s.PasswordHash, &s.Program, &s.ProfilePicturePath, &s.Schedules,
		&s.ActiveSchedule, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// GetByEmail retrieves a student by their unique email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email))
}

// Create inserts a new student. A unique-constraint violation on the email
// column is reported as ErrDuplicateEmail.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (first_name, middle_name, last_name, email, password_hash,
		                       program, profile_picture_path, schedules, active_schedule)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		s.FirstName, s.MiddleName, s.LastName, s.Email, s.PasswordHash,
		s.Program, s.ProfilePicturePath, s.Schedules, s.ActiveSchedule,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

// UpdateSchedules writes a student's full schedule map and active name back
// to the row. This is the persistence half of every committed planner
// mutation.
func (r *StudentRepository) UpdateSchedules(ctx context.Context, id int, schedules map[string][]model.Course, active string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET schedules = $1, active_schedule = $2, updated_at = NOW() WHERE id = $3`,
		schedules, active, id)
	return err
}

// UpdateProfilePicture stores the uploaded picture's URL path.
func (r *StudentRepository) UpdateProfilePicture(ctx context.Context, id int, path string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE students SET profile_picture_path = $1, updated_at = NOW() WHERE id = $2`,
		path, id)
	return err
}
