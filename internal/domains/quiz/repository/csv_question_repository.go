package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/resource"
)

// minFields is question text, multi-choice flag and at least one more field
const minFields = 3

// QuestionRepository exposes the question set for a locale
type QuestionRepository interface {
	FindAll(ctx context.Context, tag language.Tag) ([]model.Question, error)
}

type csvQuestionRepository struct {
	resolver *resource.Resolver
}

func NewCSVQuestionRepository(resolver *resource.Resolver) QuestionRepository {
	return &csvQuestionRepository{resolver: resolver}
}

// FindAll loads every question from the file resolved for tag.
// Read or parse failures fail the whole load.
func (r *csvQuestionRepository) FindAll(ctx context.Context, tag language.Tag) ([]model.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := r.resolver.Resolve(tag)
	if err != nil {
		return nil, err
	}

	f, err := r.resolver.FS().Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrResourceUnreadable, name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrResourceUnreadable, name, err)
	}

	questions := ParseQuestions(records)
	log.Debug().
		Str("file", name).
		Int("rows", len(records)).
		Int("questions", len(questions)).
		Msg("Questions loaded")

	return questions, nil
}

// ParseQuestions converts raw rows into questions.
// Rows with fewer than three fields are skipped. A trailing answer without a flag is dropped.
func ParseQuestions(records [][]string) []model.Question {
	questions := make([]model.Question, 0, len(records))
	for _, row := range records {
		if len(row) < minFields {
			continue
		}

		answers := make([]model.Answer, 0, (len(row)-2)/2)
		for i := 2; i+1 < len(row); i += 2 {
			answers = append(answers, model.Answer{
				Text:    row[i],
				Correct: parseFlag(row[i+1]),
			})
		}

		questions = append(questions, model.NewQuestion(row[0], parseFlag(row[1]), answers))
	}
	return questions
}

func parseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
