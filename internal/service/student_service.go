package service

import (
	"context"

	"github.com/dangal-ics/planner-backend/internal/model"
	"github.com/dangal-ics/planner-backend/internal/repository"
)

const defaultProfilePicture = "/uploads/default-profile.png"

// StudentService handles student account business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
	authService *AuthService
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, authService *AuthService) *StudentService {
	return &StudentService{studentRepo: studentRepo, authService: authService}
}

// Register creates a student account with a hashed password and the initial
// default schedule, active from the start.
func (s *StudentService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Student, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		FirstName:          req.FirstName,
		MiddleName:         req.MiddleName,
		LastName:           req.LastName,
		Email:              req.Email,
		PasswordHash:       hash,
		Program:            req.Program,
		ProfilePicturePath: defaultProfilePicture,
		Schedules:          map[string][]model.Course{model.DefaultScheduleName: {}},
		ActiveSchedule:     model.DefaultScheduleName,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetByEmail retrieves a student by their unique email.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return s.studentRepo.GetByEmail(ctx, email)
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// SetProfilePicture stores the uploaded picture's path on the student row.
func (s *StudentService) SetProfilePicture(ctx context.Context, id int, path string) error {
	return s.studentRepo.UpdateProfilePicture(ctx, id, path)
}
