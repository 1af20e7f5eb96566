package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	KeyWelcome            = "test.welcome"
	KeyTotalQuestions     = "test.total.questions"
	KeyEnterName          = "test.enter.name"
	KeyQuestionNumber     = "test.question.number"
	KeySingleChoicePrompt = "test.single.choice.prompt"
	KeyMultiChoicePrompt  = "test.multi.choice.prompt"
	KeyResultSuccess      = "test.result.success"
	KeyResultFailure      = "test.result.failure"
	KeyCompleted          = "test.completed"
	KeyLanguageInvalid    = "language.invalid"
)

// Supported lists the locales offered in the language menu, in menu order
var Supported = []language.Tag{language.English, language.Russian}

var dictionaries = map[language.Tag]map[string]string{
	language.English: {
		KeyWelcome:            "=== Welcome to the student test ===",
		KeyTotalQuestions:     "Total questions: %d",
		KeyEnterName:          "Please enter your first and last name: ",
		KeyQuestionNumber:     "Question %d:",
		KeySingleChoicePrompt: "Enter the number of your answer: ",
		KeyMultiChoicePrompt:  "Enter the numbers of your answers separated by commas: ",
		KeyResultSuccess:      "%s, you passed! Correct answers: %d of %d (%s%%)",
		KeyResultFailure:      "%s, you did not pass. Correct answers: %d of %d (%s%%)",
		KeyCompleted:          "=== Test completed ===",
		KeyLanguageInvalid:    "Invalid choice, using English",
	},
	language.Russian: {
		KeyWelcome:            "=== Добро пожаловать на тестирование студентов ===",
		KeyTotalQuestions:     "Всего вопросов: %d",
		KeyEnterName:          "Введите ваши имя и фамилию: ",
		KeyQuestionNumber:     "Вопрос %d:",
		KeySingleChoicePrompt: "Введите номер ответа: ",
		KeyMultiChoicePrompt:  "Введите номера ответов через запятую: ",
		KeyResultSuccess:      "%s, тест пройден! Правильных ответов: %d из %d (%s%%)",
		KeyResultFailure:      "%s, тест не пройден. Правильных ответов: %d из %d (%s%%)",
		KeyCompleted:          "=== Тестирование завершено ===",
		KeyLanguageInvalid:    "Неверный выбор, используется английский",
	},
}

var (
	messages = mustBuild()
	matcher  = language.NewMatcher(Supported)
)

func mustBuild() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, dict := range dictionaries {
		for key, msg := range dict {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Match maps any tag onto the closest supported locale, English when nothing fits
func Match(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// NewPrinter returns a printer resolving message keys for the closest supported locale
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(messages))
}

// Catalog exposes the message catalog
func Catalog() catalog.Catalog {
	return messages
}
