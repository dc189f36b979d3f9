package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/common"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Submit records a new application for the caller against a job. The CV must
// already be stored under cvName by the file store before this runs.
//
// The existence pre-check gives the common double-submit a friendly answer;
// the unique index on (job_id, user_id) is what actually holds the invariant
// when two submissions race past the check, and its violation is reported as
// the same conflict.
func (s *ApplicationService) Submit(caller auth.Identity, jobID, cvName string) (*models.Application, error) {
	if cvName == "" {
		return nil, fmt.Errorf("%w: CV file is required", common.ErrValidation)
	}

	var job models.Job
	err := s.DB.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup job: %w", err)
	}

	var count int64
	if err := s.DB.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, caller.UserID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: already applied", common.ErrConflict)
	}

	application := &models.Application{
		ID:     uuid.New().String(),
		JobID:  jobID,
		UserID: caller.UserID,
		CV:     cvName,
		Status: models.StatusPending,
	}
	if err := s.DB.Create(application).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: already applied", common.ErrConflict)
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	return application, nil
}

// ListMine returns the caller's applications, each with the job projection
// the applications page renders. Empty slice when none exist.
func (s *ApplicationService) ListMine(caller auth.Identity) ([]dtos.MyApplication, error) {
	var applications []models.Application
	if err := s.DB.Preload("Job").
		Where("user_id = ?", caller.UserID).
		Order("created_at").
		Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]dtos.MyApplication, 0, len(applications))
	for _, a := range applications {
		out = append(out, dtos.MyApplication{
			ID:        a.ID,
			CV:        a.CV,
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
			Job: dtos.JobProjection{
				ID:          a.Job.ID,
				Title:       a.Job.Title,
				Description: a.Job.Description,
				Company:     a.Job.CompanyID,
			},
		})
	}
	return out, nil
}

// ListForJob returns a job's applications with applicant projections. Only
// the owning company (or an admin) may see them.
func (s *ApplicationService) ListForJob(caller auth.Identity, jobID string) ([]dtos.JobApplication, error) {
	var job models.Job
	err := s.DB.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup job: %w", err)
	}
	if caller.Role != models.RoleAdmin && job.CompanyID != caller.UserID {
		return nil, fmt.Errorf("%w: job %s belongs to another company", common.ErrForbidden, jobID)
	}

	var applications []models.Application
	if err := s.DB.Preload("User").
		Where("job_id = ?", jobID).
		Order("created_at").
		Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]dtos.JobApplication, 0, len(applications))
	for _, a := range applications {
		out = append(out, dtos.JobApplication{
			ID:        a.ID,
			CV:        a.CV,
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
			User: dtos.ApplicantProjection{
				Name:  a.User.Name,
				Email: a.User.Email,
			},
		})
	}
	return out, nil
}

// isDuplicateKey reports whether err is a unique-constraint violation. The
// postgres driver translates these to gorm.ErrDuplicatedKey; the sqlite
// driver used in tests reports them as plain constraint errors.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}
