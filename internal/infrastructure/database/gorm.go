package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGormPostgres opens gorm on top of the same PostgreSQL settings the SQL store uses
func OpenGormPostgres(cfg *DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm postgres: %w", err)
	}
	return db, nil
}

// OpenGormSQLite opens a pure-Go SQLite database with foreign keys enforced.
// path may be a file name or a "file:...?mode=memory" URI.
func OpenGormSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(withForeignKeys(path)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// SQLite serializes writers anyway; one connection keeps in-memory databases alive and consistent.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func withForeignKeys(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_pragma=foreign_keys(1)"
	}
	return path + "?_pragma=foreign_keys(1)"
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}
}
