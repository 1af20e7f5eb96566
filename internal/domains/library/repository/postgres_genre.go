package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type postgresGenreRepository struct {
	db DBTX
}

func scanGenre(row rowScanner) (*model.Genre, error) {
	var g model.Genre
	if err := row.Scan(&g.ID, &g.Name); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresGenreRepository) FindAll(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genre ORDER BY id`)
	if err != nil {
		return nil, wrapPgError("list genres", err)
	}
	defer rows.Close()

	genres := make([]model.Genre, 0)
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, wrapPgError("scan genre", err)
		}
		genres = append(genres, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgError("iterate genres", err)
	}
	return genres, nil
}

func (r *postgresGenreRepository) FindByID(ctx context.Context, id int64) (*model.Genre, error) {
	g, err := scanGenre(r.db.QueryRow(ctx, `SELECT id, name FROM genre WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, wrapPgError("get genre", err)
	}
	return g, nil
}

func (r *postgresGenreRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	g, err := scanGenre(r.db.QueryRow(ctx, `SELECT id, name FROM genre WHERE name = $1`, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		return nil, wrapPgError("find genre by name", err)
	}
	return g, nil
}

func (r *postgresGenreRepository) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	created, err := scanGenre(r.db.QueryRow(ctx,
		`INSERT INTO genre (name) VALUES ($1) RETURNING id, name`, g.Name))
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, model.ErrDuplicateGenre
		}
		return nil, wrapPgError("create genre", err)
	}
	return created, nil
}

func (r *postgresGenreRepository) Update(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	updated, err := scanGenre(r.db.QueryRow(ctx,
		`UPDATE genre SET name = $1 WHERE id = $2 RETURNING id, name`, g.Name, g.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGenreNotFound
		}
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, model.ErrDuplicateGenre
		}
		return nil, wrapPgError("update genre", err)
	}
	return updated, nil
}

func (r *postgresGenreRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM genre WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return model.ErrGenreHasBooks
		}
		return wrapPgError("delete genre", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGenreNotFound
	}
	return nil
}

func (r *postgresGenreRepository) FindOrCreateByName(ctx context.Context, name string) (*model.Genre, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO genre (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return nil, wrapPgError("upsert genre", err)
	}
	return r.FindByName(ctx, name)
}
