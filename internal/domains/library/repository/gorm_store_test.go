package repository

import (
	"fmt"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/infrastructure/database"
)

var (
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	dbSeq           atomic.Int64
)

// newSQLiteStore opens a private in-memory database per test
func newSQLiteStore(t *testing.T) Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", unsafeNameChars.ReplaceAllString(t.Name(), "_"), dbSeq.Add(1))
	db, err := database.OpenGormSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormStore(db)
}

func TestGormStore_SQLite(t *testing.T) {
	runStoreContract(t, newSQLiteStore, contractOptions{translatesDuplicates: false})
}
