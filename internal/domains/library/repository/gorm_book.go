package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type gormBookRepository struct {
	db *gorm.DB
}

func (r *gormBookRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comment.id")
		})
}

func (r *gormBookRepository) find(ctx context.Context, op string, scope func(*gorm.DB) *gorm.DB) ([]model.Book, error) {
	books := make([]model.Book, 0)
	err := r.withRelations(ctx).
		Scopes(scope).
		Order("book.title").
		Order("book.id").
		Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	for i := range books {
		fillBookTitles(&books[i])
	}
	return books, nil
}

func fillBookTitles(b *model.Book) {
	if b.Comments == nil {
		b.Comments = []model.Comment{}
	}
	for i := range b.Comments {
		b.Comments[i].BookTitle = b.Title
	}
}

func (r *gormBookRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	return r.find(ctx, "list books", func(db *gorm.DB) *gorm.DB { return db })
}

func (r *gormBookRepository) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var b model.Book
	if err := r.withRelations(ctx).First(&b, id).Error; err != nil {
		return nil, notFound(err, model.ErrBookNotFound, "get book")
	}
	fillBookTitles(&b)
	return &b, nil
}

func (r *gormBookRepository) FindByTitle(ctx context.Context, fragment string) ([]model.Book, error) {
	pattern := likePattern(strings.ToLower(fragment))
	return r.find(ctx, "search books", func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(book.title) LIKE ? ESCAPE '\'`, pattern)
	})
}

func (r *gormBookRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]model.Book, error) {
	return r.find(ctx, "list books by author", func(db *gorm.DB) *gorm.DB {
		return db.Where("book.author_id = ?", authorID)
	})
}

func (r *gormBookRepository) FindByGenreID(ctx context.Context, genreID int64) ([]model.Book, error) {
	return r.find(ctx, "list books by genre", func(db *gorm.DB) *gorm.DB {
		return db.Where("book.genre_id = ?", genreID)
	})
}

func (r *gormBookRepository) CountByAuthorID(ctx context.Context, authorID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Book{}).Where("author_id = ?", authorID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count books by author: %w", err)
	}
	return n, nil
}

func (r *gormBookRepository) CountByGenreID(ctx context.Context, genreID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Book{}).Where("genre_id = ?", genreID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count books by genre: %w", err)
	}
	return n, nil
}

func (r *gormBookRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := model.Book{Title: b.Title, AuthorID: b.AuthorID, GenreID: b.GenreID}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&created).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("%w or %w", model.ErrAuthorNotFound, model.ErrGenreNotFound)
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return r.FindByID(ctx, created.ID)
}

func (r *gormBookRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"title":     b.Title,
			"author_id": b.AuthorID,
			"genre_id":  b.GenreID,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrBookNotFound
	}
	return r.FindByID(ctx, b.ID)
}

// Delete removes comments explicitly so the result does not depend on the
// driver enforcing ON DELETE CASCADE.
func (r *gormBookRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete book comments: %w", err)
		}
		res := tx.Delete(&model.Book{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete book: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return model.ErrBookNotFound
		}
		return nil
	})
}
