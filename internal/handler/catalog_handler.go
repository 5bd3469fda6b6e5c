package handler

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/dangal-ics/planner-backend/internal/response"
	"github.com/dangal-ics/planner-backend/internal/service"
)

// CatalogHandler serves the read-only course catalog.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Programs godoc
// GET /api/v1/catalog/programs
func (h *CatalogHandler) Programs(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"programs": service.Programs})
}

// Offerings godoc
// GET /api/v1/catalog/offerings
func (h *CatalogHandler) Offerings(c *gin.Context) {
	courses, err := h.catalogService.Offerings(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"courses": courses})
}

// ProgramOfferings godoc
// GET /api/v1/catalog/programs/:program/offerings
func (h *CatalogHandler) ProgramOfferings(c *gin.Context) {
	program := c.Param("program")
	if !slices.Contains(service.Programs, program) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	courses, err := h.catalogService.OfferingsByProgram(c.Request.Context(), program)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"program": program, "courses": courses})
}

// ProgramCurriculum godoc
// GET /api/v1/catalog/programs/:program/curriculum
func (h *CatalogHandler) ProgramCurriculum(c *gin.Context) {
	program := c.Param("program")
	if !slices.Contains(service.Programs, program) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	courses, err := h.catalogService.ProgramCurriculum(c.Request.Context(), program)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"program": program, "courses": courses})
}
