package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/common"
	"jobboard/internal/dtos"
	"jobboard/internal/middleware"
	"jobboard/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(s *services.JobService) *JobHandler {
	return &JobHandler{JobService: s}
}

// List is the GET /api/jobs endpoint
func (h *JobHandler) List(c *gin.Context) {
	var filter dtos.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	jobs, err := h.JobService.List(&filter)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is the GET /api/jobs/:id endpoint
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.JobService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err, map[error]string{
			common.ErrNotFound: "Job not found.",
		})
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is the POST /api/jobs endpoint (company role)
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	caller, _ := middleware.CallerFrom(c)
	job, err := h.JobService.Create(caller, &req)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update is the PUT /api/jobs/:id endpoint (company role, owner only)
func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	caller, _ := middleware.CallerFrom(c)
	job, err := h.JobService.Update(caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, map[error]string{
			common.ErrNotFound:  "Job not found.",
			common.ErrForbidden: "You can only edit your own jobs.",
		})
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is the DELETE /api/jobs/:id endpoint (company role, owner only)
func (h *JobHandler) Delete(c *gin.Context) {
	caller, _ := middleware.CallerFrom(c)
	if err := h.JobService.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err, map[error]string{
			common.ErrNotFound:  "Job not found.",
			common.ErrForbidden: "You can only delete your own jobs.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully."})
}
