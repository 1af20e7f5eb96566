package resource

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/model"
)

func TestResolver_Resolve(t *testing.T) {
	fsys := fstest.MapFS{
		"questions.csv":    {Data: []byte("q,false,a,true\n")},
		"questions_ru.csv": {Data: []byte("q,false,a,true\n")},
	}

	tests := []struct {
		name    string
		pattern string
		tag     language.Tag
		want    string
	}{
		{"pattern with locale", "questions_{locale}.csv", language.Russian, "questions_ru.csv"},
		{"region is reduced to language", "questions_{locale}.csv", language.MustParse("ru-RU"), "questions_ru.csv"},
		{"missing locale falls back", "questions_{locale}.csv", language.German, "questions.csv"},
		{"no pattern builds base_lang", "", language.Russian, "questions_ru.csv"},
		{"no pattern falls back", "", language.French, "questions.csv"},
		{"undetermined uses default locale", "questions_{locale}.csv", language.Und, "questions.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(fsys, "questions", tt.pattern, language.English)
			got, err := r.Resolve(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_UndeterminedUsesConfiguredDefault(t *testing.T) {
	fsys := fstest.MapFS{
		"questions_ru.csv": {Data: []byte("q,false,a,true\n")},
	}
	r := NewResolver(fsys, "questions", "questions_{locale}.csv", language.Russian)

	got, err := r.Resolve(language.Und)
	require.NoError(t, err)
	assert.Equal(t, "questions_ru.csv", got)
}

func TestResolver_NotFoundNamesBothPaths(t *testing.T) {
	r := NewResolver(fstest.MapFS{}, "questions", "questions_{locale}.csv", language.English)

	_, err := r.Resolve(language.Russian)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrResourceNotFound)
	assert.Contains(t, err.Error(), "questions_ru.csv")
	assert.Contains(t, err.Error(), "questions.csv")
}

func TestResolver_DirectoryIsNotAFile(t *testing.T) {
	fsys := fstest.MapFS{
		"questions_ru.csv/x": {Data: []byte("")},
		"questions.csv":      {Data: []byte("q,false,a,true\n")},
	}
	r := NewResolver(fsys, "questions", "", language.English)

	got, err := r.Resolve(language.Russian)
	require.NoError(t, err)
	assert.Equal(t, "questions.csv", got)
}

func TestEmbedded_ContainsBundledLocales(t *testing.T) {
	r := NewResolver(Embedded(), "questions", "questions_{locale}.csv", language.English)

	for _, tag := range []language.Tag{language.English, language.Russian} {
		name, err := r.Resolve(tag)
		require.NoError(t, err)
		assert.Equal(t, r.LocalizedName(tag), name)
	}
}
