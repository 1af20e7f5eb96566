package service

import (
	"fmt"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/repository"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/infrastructure/database"
)

var (
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	dbSeq           atomic.Int64
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s_%d?mode=memory&cache=shared", unsafeNameChars.ReplaceAllString(t.Name(), "_"), dbSeq.Add(1))
	db, err := database.OpenGormSQLite(dsn)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repository.NewGormStore(db)
}

func intPtr(n int) *int { return &n }
