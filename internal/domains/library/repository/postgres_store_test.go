package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/infrastructure/database"
)

// Set LIBRARY_TEST_DATABASE_URL to a disposable database to run these
const testDatabaseEnv = "LIBRARY_TEST_DATABASE_URL"

func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(testDatabaseEnv)
	if url == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	return pool
}

func resetTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE comment, book, genre, author RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func TestPostgresStore(t *testing.T) {
	pool := openTestPool(t)

	runStoreContract(t, func(t *testing.T) Store {
		resetTables(t, pool)
		return NewPostgresStore(pool)
	}, contractOptions{translatesDuplicates: true})
}

func TestGormStore_Postgres(t *testing.T) {
	pool := openTestPool(t)

	cfg, err := pgxpool.ParseConfig(os.Getenv(testDatabaseEnv))
	require.NoError(t, err)
	db, err := database.OpenGormPostgres(&database.DBConfig{
		Host:     cfg.ConnConfig.Host,
		Port:     int(cfg.ConnConfig.Port),
		Username: cfg.ConnConfig.User,
		Password: cfg.ConnConfig.Password,
		DBName:   cfg.ConnConfig.Database,
		SSLMode:  "disable",
	})
	require.NoError(t, err)

	runStoreContract(t, func(t *testing.T) Store {
		resetTables(t, pool)
		return NewGormStore(db)
	}, contractOptions{translatesDuplicates: true})
}

func TestPostgresStore_DeleteReferencedAuthorIsConflict(t *testing.T) {
	pool := openTestPool(t)
	resetTables(t, pool)
	store := NewPostgresStore(pool)

	book := seedBook(t, store, "Fathers and Sons", "Ivan", "Turgenev", "Novel")
	err := store.Authors().Delete(context.Background(), book.AuthorID)
	assert.ErrorIs(t, err, model.ErrAuthorHasBooks)
	err = store.Genres().Delete(context.Background(), book.GenreID)
	assert.ErrorIs(t, err, model.ErrGenreHasBooks)
}

func TestWrapPgError(t *testing.T) {
	err := wrapPgError("create author", &pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate"})
	assert.Contains(t, err.Error(), "23505 unique_violation")
	assert.Equal(t, pgUniqueViolation, pgErrorCode(err))
	assert.Empty(t, pgErrorCode(assert.AnError))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
