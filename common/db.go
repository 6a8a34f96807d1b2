package common

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fotografica/loggers"
)

func ConnectDb(dbFile string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		loggers.Logger.Error("Error opening sqlite db: " + err.Error())
		return nil
	}
	loggers.Logger.Info("opened sqlite db at: ", dbFile)
	return db
}
