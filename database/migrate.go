package database

import (
	"fmt"

	"giglink_backend/internal/config"
	"giglink_backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the configured database. TranslateError turns driver
// duplicate-key failures into gorm.ErrDuplicatedKey, which the uniqueness
// checks in the repositories rely on.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.MediaItem{},
		&models.Venue{},
		&models.Job{},
		&models.JobApplication{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupJobApplication{},
		&models.Message{},
	)
}
