package service

import (
	"context"
	"io"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type AuthorService interface {
	GetAll(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	FindByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error)
	Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error)
	Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error)
	Delete(ctx context.Context, id int64) error
}

type GenreService interface {
	GetAll(ctx context.Context) ([]model.Genre, error)
	GetByID(ctx context.Context, id int64) (*model.Genre, error)
	FindByName(ctx context.Context, name string) (*model.Genre, error)
	Create(ctx context.Context, req model.GenreRequest) (*model.Genre, error)
	Update(ctx context.Context, id int64, req model.GenreRequest) (*model.Genre, error)
	Delete(ctx context.Context, id int64) error
}

type BookService interface {
	GetAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, req model.BookRequest) (*model.Book, error)
	Update(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error)
	Delete(ctx context.Context, id int64) error

	FindByTitle(ctx context.Context, fragment string) ([]model.Book, error)
	FindByAuthor(ctx context.Context, firstName, lastName string) ([]model.Book, error)
	FindByGenre(ctx context.Context, name string) ([]model.Book, error)

	AddComment(ctx context.Context, bookID int64, req model.CommentRequest) (*model.Comment, error)
	RemoveComment(ctx context.Context, bookID, commentID int64) error
	GetComments(ctx context.Context, bookID int64) ([]model.Comment, error)

	Import(ctx context.Context, r io.Reader) (*model.ImportResult, error)
	Export(ctx context.Context, w io.Writer) (int, error)
}

type CommentService interface {
	GetAll(ctx context.Context) ([]model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	FindByNickname(ctx context.Context, nickname string) ([]model.Comment, error)
	FindByBookID(ctx context.Context, bookID int64) ([]model.Comment, error)
	Update(ctx context.Context, id int64, req model.CommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}
