package database

import (
	"log"

	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the local store and migrates it. It is only used when
// no external API is configured.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.Account{},
		&models.Company{},
		&models.Job{},
		&models.JobEvent{},
		&models.CandidateProfile{},
		&models.Experience{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
