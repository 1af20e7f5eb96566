package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore is the ORM-backed store
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// AutoMigrate creates or updates the library tables for the ORM store
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Author{}, &model.Genre{}, &model.Book{}, &model.Comment{}); err != nil {
		return fmt.Errorf("failed to migrate library schema: %w", err)
	}
	return nil
}

func (s *gormStore) Authors() AuthorRepository {
	return &gormAuthorRepository{db: s.db}
}

func (s *gormStore) Genres() GenreRepository {
	return &gormGenreRepository{db: s.db}
}

func (s *gormStore) Books() BookRepository {
	return &gormBookRepository{db: s.db}
}

func (s *gormStore) Comments() CommentRepository {
	return &gormCommentRepository{db: s.db}
}

func (s *gormStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// notFound maps gorm.ErrRecordNotFound to target and wraps everything else
func notFound(err error, target error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
