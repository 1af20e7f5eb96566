package shell

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/config"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/repository"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/resource"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

var testFS = fstest.MapFS{
	"questions_en.csv": {Data: []byte("2+2=?,false,3,false,4,true\nPrimes?,true,2,true,4,false,5,true\n")},
	"questions_ru.csv": {Data: []byte("2+2=?,false,три,false,четыре,true\n")},
}

func testConfig() config.QuizConfig {
	return config.QuizConfig{
		CSVResource:        "questions",
		CSVResourcePattern: "questions_{locale}.csv",
		PassingLimit:       1,
		DefaultLocale:      "en",
		AnswerPolicy:       config.PolicyStrict,
	}
}

func newShell(input string) (*shell.Shell, *strings.Builder) {
	var out strings.Builder
	console := shell.NewConsole(strings.NewReader(input), &out)
	cfg := testConfig()
	questions := service.NewQuestionService(repository.NewCSVQuestionRepository(
		resource.NewResolver(testFS, cfg.CSVResource, cfg.CSVResourcePattern, language.English),
	))

	s := shell.New("quiz> ", console)
	s.Register(NewCommands(cfg, questions, service.StrictEvaluator{}, console).Commands()...)
	return s, &out
}

func TestCommands_ListQuestions(t *testing.T) {
	s, _ := newShell("")

	out, err := s.Execute(context.Background(), "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Questions (en) ===")
	assert.Contains(t, out, "Total: 2")
	assert.Contains(t, out, "   Type: Multiple choice")
	assert.Contains(t, out, "   [ ] 1. 3\n   [✓] 2. 4")

	out, err = s.Execute(context.Background(), "list -l ru")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Questions (ru) ===")
	assert.Contains(t, out, "[✓] 2. четыре")
}

func TestCommands_ShowConfig(t *testing.T) {
	s, _ := newShell("")

	out, err := s.Execute(context.Background(), "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Question source: embedded")
	assert.Contains(t, out, "CSV Pattern: questions_{locale}.csv")
	assert.Contains(t, out, "Passing Limit: 1")
	assert.Contains(t, out, "Answer Policy: strict")
}

func TestCommands_StartSharesConsoleInput(t *testing.T) {
	s, out := newShell("start\n1\nAda\n2\n1,3\nexit\n")

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Starting test session...")
	assert.Contains(t, out.String(), "Ada, you passed! Correct answers: 2 of 2")
}
