package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dangal-ics/planner-backend/internal/middleware"
	"github.com/dangal-ics/planner-backend/internal/model"
	"github.com/dangal-ics/planner-backend/internal/planner"
	"github.com/dangal-ics/planner-backend/internal/response"
	"github.com/dangal-ics/planner-backend/internal/service"
	"github.com/dangal-ics/planner-backend/internal/validator"
)

// PlannerHandler exposes the enlistment and schedule management endpoints.
type PlannerHandler struct {
	plannerService *service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler.
func NewPlannerHandler(plannerService *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

// plannerError translates engine and catalog rejections into API error codes.
// Anything unrecognized is an internal error.
func plannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrProgramIneligible):
		response.Fail(c, http.StatusConflict, response.ErrProgramIneligible)
	case errors.Is(err, planner.ErrTimeConflict):
		response.Fail(c, http.StatusConflict, response.ErrTimeConflict)
	case errors.Is(err, planner.ErrDuplicateLecture):
		response.Fail(c, http.StatusConflict, response.ErrDuplicateLecture)
	case errors.Is(err, planner.ErrDuplicateLab):
		response.Fail(c, http.StatusConflict, response.ErrDuplicateLab)
	case errors.Is(err, planner.ErrSectionMismatch):
		response.Fail(c, http.StatusConflict, response.ErrSectionMismatch)
	case errors.Is(err, planner.ErrCourseNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrCourseNotFound)
	case errors.Is(err, planner.ErrEmptyName):
		response.Fail(c, http.StatusBadRequest, response.ErrEmptyName)
	case errors.Is(err, planner.ErrNameExists):
		response.Fail(c, http.StatusConflict, response.ErrNameExists)
	case errors.Is(err, planner.ErrNoOtherSchedules):
		response.Fail(c, http.StatusConflict, response.ErrNoOtherSchedules)
	case errors.Is(err, planner.ErrCannotDeleteLast):
		response.Fail(c, http.StatusConflict, response.ErrCannotDeleteLast)
	case errors.Is(err, planner.ErrScheduleNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrScheduleNotFound)
	case errors.Is(err, service.ErrUnknownSection):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// ActiveSchedule godoc
// GET /api/v1/student/schedule
func (h *PlannerHandler) ActiveSchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)

	view, err := h.plannerService.ActiveSchedule(c.Request.Context(), claims.StudentID)
	if err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// Calendar godoc
// GET /api/v1/student/schedule/calendar
func (h *PlannerHandler) Calendar(c *gin.Context) {
	claims := middleware.GetClaims(c)

	blocks, err := h.plannerService.Calendar(c.Request.Context(), claims.StudentID)
	if err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocks": blocks})
}

// AddCourse godoc
// POST /api/v1/student/schedule/courses
func (h *PlannerHandler) AddCourse(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.AddCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	view, err := h.plannerService.AddCourse(c.Request.Context(), claims.StudentID, req.Code, req.Section)
	if err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// RemoveCourse godoc
// DELETE /api/v1/student/schedule/courses/:code
func (h *PlannerHandler) RemoveCourse(c *gin.Context) {
	claims := middleware.GetClaims(c)

	view, err := h.plannerService.RemoveCourse(c.Request.Context(), claims.StudentID, c.Param("code"))
	if err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// ListSchedules godoc
// GET /api/v1/student/schedules
func (h *PlannerHandler) ListSchedules(c *gin.Context) {
	claims := middleware.GetClaims(c)

	names, active, err := h.plannerService.ScheduleNames(c.Request.Context(), claims.StudentID)
	if err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schedules": names, "active": active})
}

// CreateSchedule godoc
// POST /api/v1/student/schedules
func (h *PlannerHandler) CreateSchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.ScheduleNameRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.plannerService.CreateSchedule(c.Request.Context(), claims.StudentID, req.Name); err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"active": req.Name})
}

// SaveScheduleAs godoc
// POST /api/v1/student/schedules/save-as
func (h *PlannerHandler) SaveScheduleAs(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.ScheduleNameRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.plannerService.SaveAs(c.Request.Context(), claims.StudentID, req.Name); err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"saved": req.Name})
}

// SwitchSchedule godoc
// PUT /api/v1/student/schedules/active
func (h *PlannerHandler) SwitchSchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.ScheduleNameRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.plannerService.SwitchSchedule(c.Request.Context(), claims.StudentID, req.Name); err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"active": req.Name})
}

// DeleteSchedule godoc
// DELETE /api/v1/student/schedules/:name
func (h *PlannerHandler) DeleteSchedule(c *gin.Context) {
	claims := middleware.GetClaims(c)

	if err := h.plannerService.DeleteSchedule(c.Request.Context(), claims.StudentID, c.Param("name")); err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": c.Param("name")})
}

// CompareSchedules godoc
// GET /api/v1/student/schedules/compare?left=NAME&right=NAME
func (h *PlannerHandler) CompareSchedules(c *gin.Context) {
	claims := middleware.GetClaims(c)

	left := c.Query("left")
	right := c.Query("right")
	if left == "" || right == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	cmp, err := h.plannerService.Compare(c.Request.Context(), claims.StudentID, left, right)
	if err != nil {
		plannerError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cmp)
}
