package utils

import (
	"itemnav/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase opens the sqlite database at dbPath and migrates the schema.
func InitDatabase(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = "itemnav.db"
	}
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.Article{}, &models.Page{}, &models.Album{}, &models.Image{}, &models.Setting{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
