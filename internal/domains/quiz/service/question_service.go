package service

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/repository"
)

type QuestionService interface {
	GetAll(ctx context.Context, tag language.Tag) ([]model.Question, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) GetAll(ctx context.Context, tag language.Tag) ([]model.Question, error) {
	questions, err := s.repo.FindAll(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return questions, nil
}
