package database

import (
	"gorm.io/gorm"

	"fotografica/loggers"
	"fotografica/models"
)

// RunMigrations brings the schema up to date. AutoMigrate only adds what is
// missing; it never drops tables or data, so running it on every start is
// safe.
func RunMigrations(db *gorm.DB) error {
	loggers.Logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.AboutContent{},
		&models.Event{},
		&models.GalleryItem{},
		&models.HomeContent{},
		&models.TeamMember{},
		&models.ContactInfo{},
	)
	if err != nil {
		loggers.Logger.Errorf("Error running migrations: %v", err)
		return err
	}

	loggers.Logger.Info("Migrations completed successfully")
	return nil
}
