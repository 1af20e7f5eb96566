package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type postgresBookRepository struct {
	db DBTX
}

const bookSelect = `
	SELECT b.id, b.title, b.author_id, b.genre_id,
	       a.id, a.first_name, a.last_name, a.age,
	       g.id, g.name
	FROM book b
	JOIN author a ON a.id = b.author_id
	JOIN genre g ON g.id = b.genre_id`

func scanBook(row rowScanner) (*model.Book, error) {
	var (
		b model.Book
		a model.Author
		g model.Genre
	)
	err := row.Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.GenreID,
		&a.ID, &a.FirstName, &a.LastName, &a.Age,
		&g.ID, &g.Name,
	)
	if err != nil {
		return nil, err
	}
	b.Author = &a
	b.Genre = &g
	b.Comments = []model.Comment{}
	return &b, nil
}

// queryBooks runs a book select and attaches comments in one extra round trip
func (r *postgresBookRepository) queryBooks(ctx context.Context, op, query string, args ...any) ([]model.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPgError(op, err)
	}

	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			rows.Close()
			return nil, wrapPgError("scan book", err)
		}
		books = append(books, *b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, wrapPgError(op, err)
	}

	if err := r.attachComments(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *postgresBookRepository) attachComments(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]int64, len(books))
	index := make(map[int64]int, len(books))
	for i, b := range books {
		ids[i] = b.ID
		index[b.ID] = i
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, description, nickname, book_id
		FROM comment
		WHERE book_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return wrapPgError("load book comments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Description, &c.Nickname, &c.BookID); err != nil {
			return wrapPgError("scan comment", err)
		}
		i := index[c.BookID]
		c.BookTitle = books[i].Title
		books[i].Comments = append(books[i].Comments, c)
	}
	return rows.Err()
}

func (r *postgresBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	return r.queryBooks(ctx, "list books", bookSelect+` ORDER BY b.title, b.id`)
}

func (r *postgresBookRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	books, err := r.queryBooks(ctx, "get book", bookSelect+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, model.ErrBookNotFound
	}
	return &books[0], nil
}

func (r *postgresBookRepository) FindByTitle(ctx context.Context, fragment string) ([]model.Book, error) {
	return r.queryBooks(ctx, "search books",
		bookSelect+` WHERE b.title ILIKE $1 ORDER BY b.title, b.id`, likePattern(fragment))
}

func (r *postgresBookRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error) {
	return r.queryBooks(ctx, "list books by author",
		bookSelect+` WHERE b.author_id = $1 ORDER BY b.title, b.id`, authorID)
}

func (r *postgresBookRepository) FindByGenreID(ctx context.Context, genreID int64) ([]model.Book, error) {
	return r.queryBooks(ctx, "list books by genre",
		bookSelect+` WHERE b.genre_id = $1 ORDER BY b.title, b.id`, genreID)
}

func (r *postgresBookRepository) CountByAuthorID(ctx context.Context, authorID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM book WHERE author_id = $1`, authorID).Scan(&n); err != nil {
		return 0, wrapPgError("count books by author", err)
	}
	return n, nil
}

func (r *postgresBookRepository) CountByGenreID(ctx context.Context, genreID int64) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM book WHERE genre_id = $1`, genreID).Scan(&n); err != nil {
		return 0, wrapPgError("count books by genre", err)
	}
	return n, nil
}

func (r *postgresBookRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO book (title, author_id, genre_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		b.Title, b.AuthorID, b.GenreID,
	).Scan(&id)
	if err != nil {
		return nil, r.translateReferenceError("create book", err)
	}
	return r.FindByID(ctx, id)
}

func (r *postgresBookRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE book
		SET title = $1, author_id = $2, genre_id = $3
		WHERE id = $4`,
		b.Title, b.AuthorID, b.GenreID, b.ID,
	)
	if err != nil {
		return nil, r.translateReferenceError("update book", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrBookNotFound
	}
	return r.FindByID(ctx, b.ID)
}

// Delete relies on ON DELETE CASCADE for the book's comments
func (r *postgresBookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM book WHERE id = $1`, id)
	if err != nil {
		return wrapPgError("delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// translateReferenceError maps a dangling author_id or genre_id to its not-found error
func (r *postgresBookRepository) translateReferenceError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		if pgErr.ConstraintName == "fk_book_genre" {
			return model.ErrGenreNotFound
		}
		return model.ErrAuthorNotFound
	}
	return wrapPgError(op, err)
}
