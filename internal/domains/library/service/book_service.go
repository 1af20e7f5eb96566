package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/repository"
)

type bookService struct {
	store repository.Store
}

func NewBookService(store repository.Store) BookService {
	return &bookService{store: store}
}

func (s *bookService) GetAll(ctx context.Context) ([]model.Book, error) {
	return s.store.Books().FindAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.store.Books().FindByID(ctx, id)
}

// Create resolves author and genre by natural key, creating them when
// missing, and stores the book in the same transaction.
func (s *bookService) Create(ctx context.Context, req model.BookRequest) (*model.Book, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created *model.Book
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		book, err := resolveReferences(ctx, tx, req)
		if err != nil {
			return err
		}
		created, err = tx.Books().Create(ctx, book)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("book_id", created.ID).
		Str("title", created.Title).
		Int64("author_id", created.AuthorID).
		Int64("genre_id", created.GenreID).
		Msg("Book created")
	return created, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated *model.Book
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Books().FindByID(ctx, id); err != nil {
			return err
		}
		book, err := resolveReferences(ctx, tx, req)
		if err != nil {
			return err
		}
		book.ID = id
		updated, err = tx.Books().Update(ctx, book)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", id).Msg("Book updated")
	return updated, nil
}

func resolveReferences(ctx context.Context, tx repository.Store, req model.BookRequest) (*model.Book, error) {
	author, err := tx.Authors().FindOrCreateByFullName(ctx, req.AuthorFirstName, req.AuthorLastName)
	if err != nil {
		return nil, err
	}
	genre, err := tx.Genres().FindOrCreateByName(ctx, req.Genre)
	if err != nil {
		return nil, err
	}
	return &model.Book{
		Title:    req.Title,
		AuthorID: author.ID,
		GenreID:  genre.ID,
	}, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Books().Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("book_id", id).Msg("Book deleted")
	return nil
}

func (s *bookService) FindByTitle(ctx context.Context, fragment string) ([]model.Book, error) {
	return s.store.Books().FindByTitle(ctx, strings.TrimSpace(fragment))
}

// FindByAuthor returns ErrAuthorNotFound when no author has that name
func (s *bookService) FindByAuthor(ctx context.Context, firstName, lastName string) ([]model.Book, error) {
	author, err := s.store.Authors().FindByFullName(ctx, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
	if err != nil {
		return nil, err
	}
	return s.store.Books().FindByAuthorID(ctx, author.ID)
}

func (s *bookService) FindByGenre(ctx context.Context, name string) ([]model.Book, error) {
	genre, err := s.store.Genres().FindByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return s.store.Books().FindByGenreID(ctx, genre.ID)
}

func (s *bookService) AddComment(ctx context.Context, bookID int64, req model.CommentRequest) (*model.Comment, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created *model.Comment
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Books().FindByID(ctx, bookID); err != nil {
			return err
		}
		var err error
		created, err = tx.Comments().Create(ctx, &model.Comment{
			Description: req.Description,
			Nickname:    req.Nickname,
			BookID:      bookID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("book_id", bookID).Int64("comment_id", created.ID).Msg("Comment added")
	return created, nil
}

// RemoveComment only deletes the comment if it belongs to bookID
func (s *bookService) RemoveComment(ctx context.Context, bookID, commentID int64) error {
	return s.store.WithTx(ctx, func(tx repository.Store) error {
		if _, err := tx.Books().FindByID(ctx, bookID); err != nil {
			return err
		}
		comment, err := tx.Comments().FindByID(ctx, commentID)
		if err != nil {
			return err
		}
		if comment.BookID != bookID {
			return model.ErrCommentNotFound
		}
		return tx.Comments().Delete(ctx, commentID)
	})
}

func (s *bookService) GetComments(ctx context.Context, bookID int64) ([]model.Comment, error) {
	if _, err := s.store.Books().FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.store.Comments().FindByBookID(ctx, bookID)
}
