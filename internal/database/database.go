package database

import (
	"fmt"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance.
var DB *gorm.DB

// Connect opens the database and optionally runs auto-migration.
// With no real DSN configured (development mode) it falls back to a local
// sqlite file so the server runs without live backend credentials.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	db, err := open(cfg, resolveLogLevel(cfg))
	if err != nil {
		return nil, err
	}

	if autoMigrate {
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	DB = db
	return db, nil
}

// OpenEphemeral returns an in-memory sqlite database with the full schema,
// used by tests.
func OpenEphemeral() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open ephemeral database: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	if cfg.IsDev() {
		return logger.Info
	}
	return logger.Warn
}

func open(cfg *config.AppConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	if config.DevelopmentMode(cfg) {
		db, err := gorm.Open(sqlite.Open("folio-dev.db"), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("sqlite fallback failed: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}

// migrate runs GORM auto-migration for all models.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.UserSession{},
		&models.ProfileModel{},
		&models.CaseStudyModel{},
		&models.StoryModel{},
		&models.SkillCategoryModel{},
		&models.SkillModel{},
		&models.ToolModel{},
		&models.JourneyTimelineModel{},
		&models.MilestoneModel{},
		&models.ContactSectionModel{},
		&models.SocialLinkModel{},
		&models.CVSectionModel{},
		&models.CVVersionModel{},
		&models.CarouselModel{},
		&models.SlideModel{},
	)
}
