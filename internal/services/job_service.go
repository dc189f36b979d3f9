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

// FileRemover deletes stored CV files by name. Satisfied by
// *storage.FileStore; may be nil when no file cleanup is wanted.
type FileRemover interface {
	Remove(name string) error
}

type JobService struct {
	DB    *gorm.DB
	Files FileRemover
}

func NewJobService(db *gorm.DB, files FileRemover) *JobService {
	return &JobService{DB: db, Files: files}
}

// List returns jobs newest first, narrowed by the optional filters the
// listing page sends (title/location substring, exact type).
func (s *JobService) List(filter *dtos.JobFilter) ([]models.Job, error) {
	query := s.DB.Model(&models.Job{}).Order("created_at DESC")
	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) Get(id string) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup job: %w", err)
	}
	return &job, nil
}

func (s *JobService) Create(caller auth.Identity, req *dtos.JobRequest) (*models.Job, error) {
	job := &models.Job{
		ID:          uuid.New().String(),
		CompanyID:   caller.UserID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Type:        req.Type,
	}
	if job.Type == "" {
		job.Type = models.TypeFullTime
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (s *JobService) Update(caller auth.Identity, id string, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(caller, job); err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.Salary = req.Salary
	if req.Type != "" {
		job.Type = req.Type
	}
	if err := s.DB.Save(job).Error; err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Delete removes a job together with its applications. Both rows go in one
// transaction so the foreign key from applications never blocks the delete;
// the stored CV files are removed afterwards, best-effort.
func (s *JobService) Delete(caller auth.Identity, id string) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := requireOwner(caller, job); err != nil {
		return err
	}

	var cvs []string
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("job_id = ?", id).
			Pluck("cv", &cvs).Error; err != nil {
			return fmt.Errorf("list applications: %w", err)
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return fmt.Errorf("delete applications: %w", err)
		}
		if err := tx.Delete(job).Error; err != nil {
			return fmt.Errorf("delete job: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Files != nil {
		for _, cv := range cvs {
			_ = s.Files.Remove(cv)
		}
	}
	return nil
}

func requireOwner(caller auth.Identity, job *models.Job) error {
	if caller.Role == models.RoleAdmin || job.CompanyID == caller.UserID {
		return nil
	}
	return fmt.Errorf("%w: job %s belongs to another company", common.ErrForbidden, job.ID)
}
