package service

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/model"
)

type mockQuestionService struct {
	mock.Mock
}

func (m *mockQuestionService) GetAll(ctx context.Context, tag language.Tag) ([]model.Question, error) {
	args := m.Called(ctx, tag)
	questions, _ := args.Get(0).([]model.Question)
	return questions, args.Error(1)
}

type scriptReader struct {
	sc *bufio.Scanner
}

func script(lines ...string) *scriptReader {
	return &scriptReader{sc: bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))}
}

func (r *scriptReader) ReadLine() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	return r.sc.Text(), true
}

func threeQuestions() []model.Question {
	return []model.Question{
		singleChoice(),
		multiChoice(),
		model.NewQuestion("Go keyword for goroutine?", false, []model.Answer{
			{Text: "go", Correct: true},
			{Text: "run", Correct: false},
		}),
	}
}

func TestSession_Run(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		wantLocale  language.Tag
		wantCorrect int
		wantPassed  bool
		wantOutput  []string
	}{
		{
			name:        "english two of three passes",
			input:       []string{"1", "Ivan Petrov", "2", "1,2", "1"},
			wantLocale:  language.English,
			wantCorrect: 2,
			wantPassed:  true,
			wantOutput:  []string{"Welcome", "Total questions: 3", "Question 3:", "1. 3\n2. 4\n", "you passed", "Ivan Petrov", "2 of 3", "66.7%"},
		},
		{
			name:        "russian one of three fails",
			input:       []string{"2", "Иван", "1", "1,3", "2"},
			wantLocale:  language.Russian,
			wantCorrect: 1,
			wantPassed:  false,
			wantOutput:  []string{"Всего вопросов: 3", "тест не пройден", "1 из 3"},
		},
		{
			name:        "invalid language falls back to english",
			input:       []string{"7", "Anna", "2", " 1 , 3 ", "1"},
			wantLocale:  language.English,
			wantCorrect: 3,
			wantPassed:  true,
			wantOutput:  []string{"Invalid choice, using English", "100.0%"},
		},
		{
			name:        "exhausted input counts as wrong",
			input:       []string{"1", "Bob", "2"},
			wantLocale:  language.English,
			wantCorrect: 1,
			wantPassed:  false,
			wantOutput:  []string{"did not pass"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockQuestionService)
			svc.On("GetAll", mock.Anything, tt.wantLocale).Return(threeQuestions(), nil)

			var out strings.Builder
			session := NewSession(svc, StrictEvaluator{}, 2, script(tt.input...), &out)

			result, err := session.Run(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.wantLocale, result.Locale)
			assert.Equal(t, 3, result.Total)
			assert.Equal(t, tt.wantCorrect, result.Correct)
			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.NotEqual(t, [16]byte{}, [16]byte(result.ID))
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestSession_LoadFailureAbortsBeforePrompting(t *testing.T) {
	svc := new(mockQuestionService)
	svc.On("GetAll", mock.Anything, language.English).Return(nil, model.ErrResourceNotFound)

	var out strings.Builder
	result, err := NewSession(svc, StrictEvaluator{}, 1, script("1", "Name"), &out).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrResourceNotFound))
	assert.Nil(t, result)
	assert.NotContains(t, out.String(), "Welcome")
}

func TestVerdict(t *testing.T) {
	assert.True(t, Verdict(2, 2))
	assert.True(t, Verdict(3, 2))
	assert.False(t, Verdict(1, 2))
	assert.True(t, Verdict(0, 0))
}

func TestResult_Percent(t *testing.T) {
	assert.Equal(t, "66.7", Result{Correct: 2, Total: 3}.Percent().StringFixed(1))
	assert.Equal(t, "0.0", Result{}.Percent().StringFixed(1))
}
