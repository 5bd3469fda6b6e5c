package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dangal-ics/planner-backend/internal/middleware"
	"github.com/dangal-ics/planner-backend/internal/response"
	"github.com/dangal-ics/planner-backend/internal/service"
)

// MediaHandler handles profile picture uploads.
type MediaHandler struct {
	mediaService   *service.MediaService
	studentService *service.StudentService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService, studentService *service.StudentService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, studentService: studentService}
}

// UploadProfilePicture godoc
// PUT /api/v1/student/profile-picture
func (h *MediaHandler) UploadProfilePicture(c *gin.Context) {
	claims := middleware.GetClaims(c)

	file, header, err := c.Request.FormFile("picture")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	path, err := h.mediaService.SaveProfilePicture(file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFileType):
			response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		case errors.Is(err, service.ErrFileTooLarge):
			response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	if err := h.studentService.SetProfilePicture(c.Request.Context(), claims.StudentID, path); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile_picture": path})
}
