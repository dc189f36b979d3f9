package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobboard/internal/auth"
	"jobboard/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Enable foreign key enforcement so the schema behaves like postgres.
	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createJob(t *testing.T, db *gorm.DB, companyID, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Title:       title,
		Description: "desc",
		Type:        models.TypeFullTime,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("create job: %v", err)
	}
	return job
}

func identityOf(user *models.User) auth.Identity {
	return auth.Identity{UserID: user.ID, Name: user.Name, Role: user.Role}
}

func countApplications(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.Application{}).Count(&count).Error; err != nil {
		t.Fatalf("count applications: %v", err)
	}
	return count
}
