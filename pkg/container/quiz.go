package container

import (
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/config"
	quizRepo "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/repository"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/resource"
	quizService "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/service"
)

// QuizContainer holds the quiz dependency graph; it needs no external resources
type QuizContainer struct {
	Config    config.QuizConfig
	Resolver  *resource.Resolver
	Questions quizService.QuestionService
	Evaluator quizService.Evaluator
}

func NewQuizContainer(cfg config.QuizConfig) (*QuizContainer, error) {
	defaultLocale, err := language.Parse(cfg.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", cfg.DefaultLocale, err)
	}

	var questionFS fs.FS
	if cfg.ResourceDir != "" {
		questionFS = os.DirFS(cfg.ResourceDir)
	} else {
		questionFS = resource.Embedded()
	}

	evaluator, err := quizService.NewEvaluator(cfg.AnswerPolicy)
	if err != nil {
		return nil, err
	}

	resolver := resource.NewResolver(questionFS, cfg.CSVResource, cfg.CSVResourcePattern, defaultLocale)
	return &QuizContainer{
		Config:    cfg,
		Resolver:  resolver,
		Questions: quizService.NewQuestionService(quizRepo.NewCSVQuestionRepository(resolver)),
		Evaluator: evaluator,
	}, nil
}
