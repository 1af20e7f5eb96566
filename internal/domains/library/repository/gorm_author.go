package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type gormAuthorRepository struct {
	db *gorm.DB
}

func (r *gormAuthorRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	authors := make([]model.Author, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (r *gormAuthorRepository) FindByID(ctx context.Context, id int64) (*model.Author, error) {
	var a model.Author
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, notFound(err, model.ErrAuthorNotFound, "get author")
	}
	return &a, nil
}

func (r *gormAuthorRepository) FindByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	var a model.Author
	err := r.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		First(&a).Error
	if err != nil {
		return nil, notFound(err, model.ErrAuthorNotFound, "find author by name")
	}
	return &a, nil
}

func (r *gormAuthorRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := model.Author{FirstName: a.FirstName, LastName: a.LastName, Age: a.Age}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrDuplicateAuthor
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *gormAuthorRepository) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"first_name": a.FirstName,
			"last_name":  a.LastName,
			"age":        a.Age,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, model.ErrDuplicateAuthor
		}
		return nil, fmt.Errorf("failed to update author: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrAuthorNotFound
	}
	return r.FindByID(ctx, a.ID)
}

func (r *gormAuthorRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Author{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return model.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (r *gormAuthorRepository) FindOrCreateByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	candidate := model.Author{FirstName: firstName, LastName: lastName}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&candidate).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert author: %w", err)
	}
	return r.FindByFullName(ctx, firstName, lastName)
}
