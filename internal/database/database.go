package database

import (
	"strings"

	"github.com/ilystsov/vocabulary-builder/internal/config"
	"github.com/ilystsov/vocabulary-builder/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database named by cfg.DatabaseURL. Postgres URLs go
// through the pgx driver; everything else is treated as a sqlite path
// (optionally prefixed with sqlite://).
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	}

	path := strings.TrimPrefix(cfg.DatabaseURL, "sqlite://")
	return gorm.Open(sqlite.Open(path), gormCfg)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Word{},
		&model.Semantic{},
		&model.Translation{},
		&model.Example{},
		&model.ExampleTranslation{},
		&model.User{},
		&model.FavoriteWord{},
	)
}
