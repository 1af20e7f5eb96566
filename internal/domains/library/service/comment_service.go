package service

import (
	"context"
	"strings"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/repository"
)

type commentService struct {
	store repository.Store
}

func NewCommentService(store repository.Store) CommentService {
	return &commentService{store: store}
}

func (s *commentService) GetAll(ctx context.Context) ([]model.Comment, error) {
	return s.store.Comments().FindAll(ctx)
}

func (s *commentService) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	return s.store.Comments().FindByID(ctx, id)
}

func (s *commentService) FindByNickname(ctx context.Context, nickname string) ([]model.Comment, error) {
	return s.store.Comments().FindByNickname(ctx, strings.TrimSpace(nickname))
}

func (s *commentService) FindByBookID(ctx context.Context, bookID int64) ([]model.Comment, error) {
	if _, err := s.store.Books().FindByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.store.Comments().FindByBookID(ctx, bookID)
}

func (s *commentService) Update(ctx context.Context, id int64, req model.CommentRequest) (*model.Comment, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.store.Comments().Update(ctx, &model.Comment{
		ID:          id,
		Description: req.Description,
		Nickname:    req.Nickname,
	})
}

func (s *commentService) Delete(ctx context.Context, id int64) error {
	return s.store.Comments().Delete(ctx, id)
}
