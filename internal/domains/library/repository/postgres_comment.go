package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type postgresCommentRepository struct {
	db DBTX
}

const commentSelect = `
	SELECT c.id, c.description, c.nickname, c.book_id, b.title
	FROM comment c
	JOIN book b ON b.id = c.book_id`

func scanComment(row rowScanner) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.Description, &c.Nickname, &c.BookID, &c.BookTitle); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresCommentRepository) queryComments(ctx context.Context, op, query string, args ...any) ([]model.Comment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPgError(op, err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, wrapPgError("scan comment", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgError(op, err)
	}
	return comments, nil
}

func (r *postgresCommentRepository) FindAll(ctx context.Context) ([]model.Comment, error) {
	return r.queryComments(ctx, "list comments", commentSelect+` ORDER BY c.id`)
}

func (r *postgresCommentRepository) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, wrapPgError("get comment", err)
	}
	return c, nil
}

func (r *postgresCommentRepository) FindByNickname(ctx context.Context, nickname string) ([]model.Comment, error) {
	return r.queryComments(ctx, "list comments by nickname",
		commentSelect+` WHERE c.nickname = $1 ORDER BY c.id`, nickname)
}

func (r *postgresCommentRepository) FindByBookID(ctx context.Context, bookID int64) ([]model.Comment, error) {
	return r.queryComments(ctx, "list comments by book",
		commentSelect+` WHERE c.book_id = $1 ORDER BY c.id`, bookID)
}

func (r *postgresCommentRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO comment (description, nickname, book_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		c.Description, c.Nickname, c.BookID,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, model.ErrBookNotFound
		}
		return nil, wrapPgError("create comment", err)
	}
	return r.FindByID(ctx, id)
}

func (r *postgresCommentRepository) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE comment
		SET description = $1, nickname = $2
		WHERE id = $3`,
		c.Description, c.Nickname, c.ID,
	)
	if err != nil {
		return nil, wrapPgError("update comment", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrCommentNotFound
	}
	return r.FindByID(ctx, c.ID)
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comment WHERE id = $1`, id)
	if err != nil {
		return wrapPgError("delete comment", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
