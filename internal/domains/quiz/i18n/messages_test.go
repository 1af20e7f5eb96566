package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDictionariesShareKeys(t *testing.T) {
	en := dictionaries[language.English]
	for tag, dict := range dictionaries {
		assert.Len(t, dict, len(en), tag.String())
		for key := range en {
			assert.Contains(t, dict, key, tag.String())
		}
	}
}

func TestNewPrinter(t *testing.T) {
	assert.Equal(t, "Question 3:", NewPrinter(language.English).Sprintf(KeyQuestionNumber, 3))
	assert.Equal(t, "Вопрос 3:", NewPrinter(language.Russian).Sprintf(KeyQuestionNumber, 3))
	assert.Equal(t, "Question 3:", NewPrinter(language.German).Sprintf(KeyQuestionNumber, 3))
}

func TestMatch(t *testing.T) {
	assert.Equal(t, language.Russian, Match(language.MustParse("ru-RU")))
	assert.Equal(t, language.English, Match(language.MustParse("en-GB")))
	assert.Equal(t, language.English, Match(language.Japanese))
}
