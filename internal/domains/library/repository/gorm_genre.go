package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type gormGenreRepository struct {
	db *gorm.DB
}

func (r *gormGenreRepository) FindAll(ctx context.Context) ([]model.Genre, error) {
	genres := make([]model.Genre, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

func (r *gormGenreRepository) FindByID(ctx context.Context, id int64) (*model.Genre, error) {
	var g model.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, notFound(err, model.ErrGenreNotFound, "get genre")
	}
	return &g, nil
}

func (r *gormGenreRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	var g model.Genre
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&g).Error; err != nil {
		return nil, notFound(err, model.ErrGenreNotFound, "find genre by name")
	}
	return &g, nil
}

func (r *gormGenreRepository) Create(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	created := model.Genre{Name: g.Name}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, model.ErrDuplicateGenre
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return &created, nil
}

func (r *gormGenreRepository) Update(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Genre{}).
		Where("id = ?", g.ID).
		Update("name", g.Name)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, model.ErrDuplicateGenre
		}
		return nil, fmt.Errorf("failed to update genre: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrGenreNotFound
	}
	return r.FindByID(ctx, g.ID)
}

func (r *gormGenreRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Genre{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return model.ErrGenreHasBooks
		}
		return fmt.Errorf("failed to delete genre: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrGenreNotFound
	}
	return nil
}

func (r *gormGenreRepository) FindOrCreateByName(ctx context.Context, name string) (*model.Genre, error) {
	candidate := model.Genre{Name: name}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&candidate).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert genre: %w", err)
	}
	return r.FindByName(ctx, name)
}
