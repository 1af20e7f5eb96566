package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type postgresAuthorRepository struct {
	db DBTX
}

const authorColumns = `id, first_name, last_name, age`

func scanAuthor(row rowScanner) (*model.Author, error) {
	var a model.Author
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Age); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresAuthorRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT `+authorColumns+` FROM author ORDER BY id`)
	if err != nil {
		return nil, wrapPgError("list authors", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, wrapPgError("scan author", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgError("iterate authors", err)
	}
	return authors, nil
}

func (r *postgresAuthorRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	a, err := scanAuthor(r.db.QueryRow(ctx, `SELECT `+authorColumns+` FROM author WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, wrapPgError("get author", err)
	}
	return a, nil
}

func (r *postgresAuthorRepository) FindByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	a, err := scanAuthor(r.db.QueryRow(ctx,
		`SELECT `+authorColumns+` FROM author WHERE first_name = $1 AND last_name = $2`,
		firstName, lastName,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, wrapPgError("find author by name", err)
	}
	return a, nil
}

func (r *postgresAuthorRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created, err := scanAuthor(r.db.QueryRow(ctx, `
		INSERT INTO author (first_name, last_name, age)
		VALUES ($1, $2, $3)
		RETURNING `+authorColumns,
		a.FirstName, a.LastName, a.Age,
	))
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, model.ErrDuplicateAuthor
		}
		return nil, wrapPgError("create author", err)
	}
	return created, nil
}

func (r *postgresAuthorRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	updated, err := scanAuthor(r.db.QueryRow(ctx, `
		UPDATE author
		SET first_name = $1, last_name = $2, age = $3
		WHERE id = $4
		RETURNING `+authorColumns,
		a.FirstName, a.LastName, a.Age, a.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, model.ErrDuplicateAuthor
		}
		return nil, wrapPgError("update author", err)
	}
	return updated, nil
}

func (r *postgresAuthorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM author WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return model.ErrAuthorHasBooks
		}
		return wrapPgError("delete author", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresAuthorRepository) FindOrCreateByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO author (first_name, last_name)
		VALUES ($1, $2)
		ON CONFLICT (first_name, last_name) DO NOTHING`,
		firstName, lastName,
	)
	if err != nil {
		return nil, wrapPgError("upsert author", err)
	}
	return r.FindByFullName(ctx, firstName, lastName)
}
