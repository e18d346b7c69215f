// database/bootstrap.go
package database

import (
	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"transledger/entities"
)

func OpenSQLite(path string, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Sheet{},
		&entities.Row{},
		&entities.RecentEntry{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
