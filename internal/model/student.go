package model

import "time"

// DefaultScheduleName is the schedule every student starts with.
const DefaultScheduleName = "Default"

// Student is the planner's user aggregate. The full set of named schedules
// and the active-schedule pointer live on the row and round-trip as JSON.
type Student struct {
	ID                 int                 `json:"id"`
	FirstName          string              `json:"first_name"`
	MiddleName         string              `json:"middle_name,omitempty"`
	LastName           string              `json:"last_name"`
	Email              string              `json:"email"`
	PasswordHash       string              `json:"-"`
	Program            string              `json:"program"`
	ProfilePicturePath string              `json:"profile_picture_path"`
	Schedules          map[string][]Course `json:"schedules"`
	ActiveSchedule     string              `json:"active_schedule"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// FullName joins the name parts, skipping an empty middle name.
func (s *Student) FullName() string {
	if s.MiddleName != "" {
		return s.FirstName + " " + s.MiddleName + " " + s.LastName
	}
	return s.FirstName + " " + s.LastName
}

// RegisterRequest is the payload for creating a student account.
type RegisterRequest struct {
	FirstName  string `json:"first_name" binding:"required,min=1,max=100"`
	MiddleName string `json:"middle_name" binding:"omitempty,max=100"`
	LastName   string `json:"last_name" binding:"required,min=1,max=100"`
	Email      string `json:"email" binding:"required,email,max=254"`
	Password   string `json:"password" binding:"required,min=6,max=128"`
	Program    string `json:"program" binding:"required,oneof='BS Computer Science' 'MS Computer Science' 'Master of Information Technology' 'PhD Computer Science'"`
}

// LoginRequest is the payload for student authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token   string   `json:"token"`
	Student *Student `json:"student"`
}
