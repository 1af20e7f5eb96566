package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/i18n"
)

// LineReader yields one input line at a time. ok is false once input is exhausted.
type LineReader interface {
	ReadLine() (line string, ok bool)
}

// Result is the outcome of one finished session
type Result struct {
	ID      uuid.UUID
	Name    string
	Locale  language.Tag
	Correct int
	Total   int
	Passed  bool
}

// Percent is the share of correct answers rounded to one decimal place
func (r Result) Percent() decimal.Decimal {
	if r.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(r.Correct)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(r.Total)), 1)
}

// Verdict passes when correct reaches the threshold
func Verdict(correct, threshold int) bool {
	return correct >= threshold
}

// Session runs language selection, the question loop and the verdict.
// A session is single use.
type Session struct {
	questions QuestionService
	evaluator Evaluator
	threshold int
	in        LineReader
	out       io.Writer
}

func NewSession(questions QuestionService, evaluator Evaluator, threshold int, in LineReader, out io.Writer) *Session {
	return &Session{
		questions: questions,
		evaluator: evaluator,
		threshold: threshold,
		in:        in,
		out:       out,
	}
}

// Run drives the whole session. Question loading failures abort before any question is shown.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	tag := s.selectLanguage()

	questions, err := s.questions.GetAll(ctx, tag)
	if err != nil {
		return nil, err
	}

	p := i18n.NewPrinter(tag)
	result := &Result{
		ID:     uuid.New(),
		Locale: tag,
		Total:  len(questions),
	}

	s.println(p.Sprintf(i18n.KeyWelcome))
	s.println(p.Sprintf(i18n.KeyTotalQuestions, len(questions)))
	s.print(p.Sprintf(i18n.KeyEnterName))
	result.Name = s.readLine()

	for i, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		s.println("")
		s.println(p.Sprintf(i18n.KeyQuestionNumber, i+1))
		s.print(q.String())
		if q.MultiChoice {
			s.print(p.Sprintf(i18n.KeyMultiChoicePrompt))
		} else {
			s.print(p.Sprintf(i18n.KeySingleChoicePrompt))
		}

		if s.evaluator.IsCorrect(s.readLine(), q) {
			result.Correct++
		}
	}

	result.Passed = Verdict(result.Correct, s.threshold)

	s.println("")
	s.println(p.Sprintf(i18n.KeyCompleted))
	key := i18n.KeyResultFailure
	if result.Passed {
		key = i18n.KeyResultSuccess
	}
	s.println(p.Sprintf(key, result.Name, result.Correct, result.Total, result.Percent().StringFixed(1)))

	log.Info().
		Str("session_id", result.ID.String()).
		Str("locale", tag.String()).
		Int("correct", result.Correct).
		Int("total", result.Total).
		Bool("passed", result.Passed).
		Msg("Quiz session finished")

	return result, nil
}

func (s *Session) selectLanguage() language.Tag {
	s.println("Select language / Выберите язык:")
	for i, tag := range i18n.Supported {
		s.println(fmt.Sprintf("%d. %s", i+1, displayName(tag)))
	}
	s.print("> ")

	switch s.readLine() {
	case "1":
		return i18n.Supported[0]
	case "2":
		return i18n.Supported[1]
	default:
		s.println(i18n.NewPrinter(i18n.Supported[0]).Sprintf(i18n.KeyLanguageInvalid))
		return i18n.Supported[0]
	}
}

func displayName(tag language.Tag) string {
	switch tag {
	case language.Russian:
		return "Русский"
	default:
		return "English"
	}
}

func (s *Session) readLine() string {
	line, _ := s.in.ReadLine()
	return strings.TrimSpace(line)
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Session) println(text string) {
	_, _ = io.WriteString(s.out, text+"\n")
}
