package repository

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/resource"
)

func TestParseQuestions_SingleChoice(t *testing.T) {
	questions := ParseQuestions([][]string{{"2+2=?", "false", "3", "false", "4", "true"}})

	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, "2+2=?", q.Text)
	assert.False(t, q.MultiChoice)
	assert.Equal(t, map[int]model.Answer{
		1: {Text: "3", Correct: false},
		2: {Text: "4", Correct: true},
	}, q.Answers())
}

func TestParseQuestions_FlagIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		flag string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			questions := ParseQuestions([][]string{{"q", tt.flag, "a", tt.flag}})
			require.Len(t, questions, 1)
			assert.Equal(t, tt.want, questions[0].MultiChoice)
			a, ok := questions[0].Answer(1)
			require.True(t, ok)
			assert.Equal(t, tt.want, a.Correct)
		})
	}
}

func TestParseQuestions_ShortRowsAreSkipped(t *testing.T) {
	questions := ParseQuestions([][]string{
		{"first", "false", "a", "true"},
		{"too short", "true"},
		{"single"},
		{},
		{"second", "true", "b", "false", "c", "true"},
	})

	require.Len(t, questions, 2)
	assert.Equal(t, "first", questions[0].Text)
	assert.Equal(t, "second", questions[1].Text)
}

func TestParseQuestions_OrdinalsAreDense(t *testing.T) {
	// trailing "orphan" has no flag and must be dropped
	questions := ParseQuestions([][]string{{"q", "true", "a", "true", "b", "false", "c", "true", "orphan"}})

	require.Len(t, questions, 1)
	q := questions[0]
	assert.Equal(t, []int{1, 2, 3}, q.Ordinals())
	assert.Equal(t, []int{1, 3}, q.SortedCorrectOrdinals())
}

func TestParseQuestions_ThreeFieldsGiveNoAnswers(t *testing.T) {
	questions := ParseQuestions([][]string{{"q", "false", "dangling"}})

	require.Len(t, questions, 1)
	assert.Equal(t, 0, questions[0].Len())
}

func TestCSVQuestionRepository_FindAll(t *testing.T) {
	fsys := fstest.MapFS{
		"questions.csv":    {Data: []byte("Default?,false,yes,true\n")},
		"questions_ru.csv": {Data: []byte("Вопрос?,false,да,true\nshort\n\"Quoted, text\",true,x,true,y,false\n")},
	}
	repo := NewCSVQuestionRepository(resource.NewResolver(fsys, "questions", "questions_{locale}.csv", language.English))

	questions, err := repo.FindAll(context.Background(), language.Russian)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Вопрос?", questions[0].Text)
	assert.Equal(t, "Quoted, text", questions[1].Text)
	assert.True(t, questions[1].MultiChoice)

	questions, err = repo.FindAll(context.Background(), language.German)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Default?", questions[0].Text)
}

func TestCSVQuestionRepository_Errors(t *testing.T) {
	t.Run("missing resource", func(t *testing.T) {
		repo := NewCSVQuestionRepository(resource.NewResolver(fstest.MapFS{}, "questions", "", language.English))

		_, err := repo.FindAll(context.Background(), language.English)
		assert.ErrorIs(t, err, model.ErrResourceNotFound)
	})

	t.Run("malformed csv", func(t *testing.T) {
		fsys := fstest.MapFS{
			"questions.csv": {Data: []byte("ok,false,a,true\n\"unterminated,false,a,true\n")},
		}
		repo := NewCSVQuestionRepository(resource.NewResolver(fsys, "questions", "", language.English))

		_, err := repo.FindAll(context.Background(), language.English)
		assert.ErrorIs(t, err, model.ErrResourceUnreadable)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		repo := NewCSVQuestionRepository(resource.NewResolver(fstest.MapFS{}, "questions", "", language.English))

		_, err := repo.FindAll(ctx, language.English)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCSVQuestionRepository_EmbeddedResources(t *testing.T) {
	repo := NewCSVQuestionRepository(resource.NewResolver(resource.Embedded(), "questions", "questions_{locale}.csv", language.English))

	en, err := repo.FindAll(context.Background(), language.English)
	require.NoError(t, err)
	ru, err := repo.FindAll(context.Background(), language.Russian)
	require.NoError(t, err)

	assert.NotEmpty(t, en)
	assert.Len(t, ru, len(en))
	for _, q := range en {
		assert.NotEmpty(t, q.CorrectOrdinals(), q.Text)
	}
}
