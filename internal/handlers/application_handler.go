package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/common"
	"jobboard/internal/middleware"
	"jobboard/internal/services"
	"jobboard/internal/storage"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	Files              *storage.FileStore
}

func NewApplicationHandler(s *services.ApplicationService, files *storage.FileStore) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: s, Files: files}
}

// Apply is the POST /api/applications/:jobId endpoint. The CV arrives as the
// multipart field "cv"; it is stored under a generated name before the
// application row is written, and removed again if that write fails so no
// orphaned file survives a rejected submission.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	caller, _ := middleware.CallerFrom(c)

	file, err := c.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CV file is required (PDF)."})
		return
	}

	storedName, err := h.Files.Save(file)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	if _, err := h.ApplicationService.Submit(caller, c.Param("jobId"), storedName); err != nil {
		// Best-effort rollback of the stored CV; the submission failed,
		// so nothing may be left behind.
		_ = h.Files.Remove(storedName)
		respondError(c, err, applyMessages)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully. Hope for the best!"})
}

var applyMessages = map[error]string{
	common.ErrValidation: "CV file is required (PDF).",
	common.ErrConflict:   "You have already applied to this job.",
	common.ErrNotFound:   "Job not found.",
}

// Mine is the GET /api/applications endpoint
func (h *ApplicationHandler) Mine(c *gin.Context) {
	caller, _ := middleware.CallerFrom(c)

	applications, err := h.ApplicationService.ListMine(caller)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ForJob is the GET /api/applications/job/:jobId endpoint (company role)
func (h *ApplicationHandler) ForJob(c *gin.Context) {
	caller, _ := middleware.CallerFrom(c)

	applications, err := h.ApplicationService.ListForJob(caller, c.Param("jobId"))
	if err != nil {
		respondError(c, err, map[error]string{
			common.ErrNotFound:  "Job not found.",
			common.ErrForbidden: "You can only view applications for your own jobs.",
		})
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Download is the GET /api/applications/download/:filename endpoint. The
// filename is caller-supplied, so it is validated and resolved strictly
// inside the upload root before any filesystem access.
func (h *ApplicationHandler) Download(c *gin.Context) {
	path, err := h.Files.Path(c.Param("filename"))
	if err != nil {
		respondError(c, err, map[error]string{
			common.ErrValidation: "Invalid filename.",
			common.ErrNotFound:   "File not found.",
		})
		return
	}
	c.FileAttachment(path, c.Param("filename"))
}
