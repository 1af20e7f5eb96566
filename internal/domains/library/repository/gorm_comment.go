package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

type gormCommentRepository struct {
	db *gorm.DB
}

type bookTitle struct {
	ID    int64
	Title string
}

// attachTitles loads the owning book titles in one query
func (r *gormCommentRepository) attachTitles(ctx context.Context, comments []model.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.BookID]; !ok {
			seen[c.BookID] = struct{}{}
			ids = append(ids, c.BookID)
		}
	}

	var titles []bookTitle
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Select("id", "title").
		Where("id IN ?", ids).
		Scan(&titles).Error
	if err != nil {
		return fmt.Errorf("failed to load comment books: %w", err)
	}

	byID := make(map[int64]string, len(titles))
	for _, t := range titles {
		byID[t.ID] = t.Title
	}
	for i := range comments {
		comments[i].BookTitle = byID[comments[i].BookID]
	}
	return nil
}

func (r *gormCommentRepository) find(ctx context.Context, op string, query *gorm.DB) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	if err := query.Order("id").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	if err := r.attachTitles(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *gormCommentRepository) FindAll(ctx context.Context) ([]model.Comment, error) {
	return r.find(ctx, "list comments", r.db.WithContext(ctx))
}

func (r *gormCommentRepository) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, model.ErrCommentNotFound, "get comment")
	}
	single := []model.Comment{c}
	if err := r.attachTitles(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

func (r *gormCommentRepository) FindByNickname(ctx context.Context, nickname string) ([]model.Comment, error) {
	return r.find(ctx, "list comments by nickname", r.db.WithContext(ctx).Where("nickname = ?", nickname))
}

func (r *gormCommentRepository) FindByBookID(ctx context.Context, bookID int64) ([]model.Comment, error) {
	return r.find(ctx, "list comments by book", r.db.WithContext(ctx).Where("book_id = ?", bookID))
}

func (r *gormCommentRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	created := model.Comment{Description: c.Description, Nickname: c.Nickname, BookID: c.BookID}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&created).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return r.FindByID(ctx, created.ID)
}

func (r *gormCommentRepository) Update(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"description": c.Description,
			"nickname":    c.Nickname,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrCommentNotFound
	}
	return r.FindByID(ctx, c.ID)
}

func (r *gormCommentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
