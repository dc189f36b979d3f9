package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/models"
)

func Connect(cfg config.DatabaseConfig) *gorm.DB {
	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the application service relies on to
	// report conflicts under concurrent submissions.
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
