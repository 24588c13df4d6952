package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/models"
)

// RunMigrations brings the schema up to date. On Postgres the pgvector
// extension is created before the tables that use it.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return err
		}
	}

	log.Printf("Running schema migrations")
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Notification{},
		&models.ActivityReport{},
	)
}
