package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/database"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type postgresStore struct {
	db DBTX
}

// NewPostgresStore is the hand-written SQL store
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{db: pool}
}

func (s *postgresStore) Authors() AuthorRepository {
	return &postgresAuthorRepository{db: s.db}
}

func (s *postgresStore) Genres() GenreRepository {
	return &postgresGenreRepository{db: s.db}
}

func (s *postgresStore) Books() BookRepository {
	return &postgresBookRepository{db: s.db}
}

func (s *postgresStore) Comments() CommentRepository {
	return &postgresCommentRepository{db: s.db}
}

func (s *postgresStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return database.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(&postgresStore{db: tx})
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

// pgErrorCode returns the SQLSTATE of a PostgreSQL error, or "" for other errors
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// wrapPgError adds the operation and the SQLSTATE condition name to err
func wrapPgError(op string, err error) error {
	if code := pgErrorCode(err); code != "" {
		return fmt.Errorf("failed to %s (%s %s): %w", op, code, pq.ErrorCode(code).Name(), err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// likePattern escapes LIKE wildcards and wraps s for a substring match
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
