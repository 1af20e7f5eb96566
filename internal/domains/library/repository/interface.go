package repository

import (
	"context"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

// Store groups the library repositories over one database handle.
// The SQL and ORM stores are interchangeable behind it.
type Store interface {
	Authors() AuthorRepository
	Genres() GenreRepository
	Books() BookRepository
	Comments() CommentRepository

	// WithTx runs fn with a Store bound to a single transaction.
	// Calling WithTx on a transactional Store nests via savepoints.
	WithTx(ctx context.Context, fn func(tx Store) error) error
}

type AuthorRepository interface {
	FindAll(ctx context.Context) ([]model.Author, error)
	FindByID(ctx context.Context, id int64) (*model.Author, error)
	FindByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error)
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	Update(ctx context.Context, a *model.Author) (*model.Author, error)
	Delete(ctx context.Context, id int64) error

	// FindOrCreateByFullName inserts the author unless one with the same
	// name exists and returns the stored row. Concurrent callers converge
	// on one row through the unique name constraint.
	FindOrCreateByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error)
}

type GenreRepository interface {
	FindAll(ctx context.Context) ([]model.Genre, error)
	FindByID(ctx context.Context, id int64) (*model.Genre, error)
	FindByName(ctx context.Context, name string) (*model.Genre, error)
	Create(ctx context.Context, g *model.Genre) (*model.Genre, error)
	Update(ctx context.Context, g *model.Genre) (*model.Genre, error)
	Delete(ctx context.Context, id int64) error
	FindOrCreateByName(ctx context.Context, name string) (*model.Genre, error)
}

// BookRepository reads return books with Author, Genre and Comments loaded
type BookRepository interface {
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	FindByTitle(ctx context.Context, fragment string) ([]model.Book, error)
	FindByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error)
	FindByGenreID(ctx context.Context, genreID int64) ([]model.Book, error)
	CountByAuthorID(ctx context.Context, authorID int64) (int64, error)
	CountByGenreID(ctx context.Context, genreID int64) (int64, error)
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete removes the book together with its comments
	Delete(ctx context.Context, id int64) error
}

// CommentRepository reads fill Comment.BookTitle
type CommentRepository interface {
	FindAll(ctx context.Context) ([]model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	FindByNickname(ctx context.Context, nickname string) ([]model.Comment, error)
	FindByBookID(ctx context.Context, bookID int64) ([]model.Comment, error)
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Update(ctx context.Context, c *model.Comment) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}
