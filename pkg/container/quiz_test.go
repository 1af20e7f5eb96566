package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/config"
	quizService "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/service"
)

func quizConfig() config.QuizConfig {
	return config.QuizConfig{
		CSVResource:        "questions",
		CSVResourcePattern: "questions_{locale}.csv",
		PassingLimit:       3,
		DefaultLocale:      "en",
		AnswerPolicy:       config.PolicyStrict,
	}
}

func TestNewQuizContainer_Embedded(t *testing.T) {
	c, err := NewQuizContainer(quizConfig())
	require.NoError(t, err)

	questions, err := c.Questions.GetAll(context.Background(), language.Russian)
	require.NoError(t, err)
	assert.NotEmpty(t, questions)
	assert.IsType(t, quizService.StrictEvaluator{}, c.Evaluator)
}

func TestNewQuizContainer_ResourceDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.csv"), []byte("Q?,false,a,true,b,false\n"), 0o600))

	cfg := quizConfig()
	cfg.ResourceDir = dir
	cfg.AnswerPolicy = config.PolicyLenient
	c, err := NewQuizContainer(cfg)
	require.NoError(t, err)

	questions, err := c.Questions.GetAll(context.Background(), language.German)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Q?", questions[0].Text)
	assert.IsType(t, quizService.LenientEvaluator{}, c.Evaluator)
}

func TestNewQuizContainer_Errors(t *testing.T) {
	cfg := quizConfig()
	cfg.DefaultLocale = "not a locale!"
	_, err := NewQuizContainer(cfg)
	assert.Error(t, err)

	cfg = quizConfig()
	cfg.AnswerPolicy = "fuzzy"
	_, err = NewQuizContainer(cfg)
	assert.Error(t, err)
}
