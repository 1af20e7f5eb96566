package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/model"
)

const (
	PolicyStrict  = "strict"
	PolicyLenient = "lenient"
)

// Evaluator decides whether a raw answer line is correct for a question
type Evaluator interface {
	IsCorrect(input string, q model.Question) bool
}

// NewEvaluator returns the evaluator registered under policy
func NewEvaluator(policy string) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", PolicyStrict:
		return StrictEvaluator{}, nil
	case PolicyLenient:
		return LenientEvaluator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownAnswerPolicy, policy)
	}
}

// StrictEvaluator requires the selection to equal the correct set exactly
type StrictEvaluator struct{}

func (StrictEvaluator) IsCorrect(input string, q model.Question) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	correct := q.CorrectOrdinals()
	if len(correct) == 0 {
		return false
	}

	selected := ParseSelection(input)
	if len(selected) != len(correct) {
		return false
	}
	for ordinal := range selected {
		if _, ok := correct[ordinal]; !ok {
			return false
		}
	}
	return true
}

// LenientEvaluator drops ordinals outside the question and accepts any
// non-empty subset of the correct answers.
type LenientEvaluator struct{}

func (LenientEvaluator) IsCorrect(input string, q model.Question) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}

	correct := q.CorrectOrdinals()
	if len(correct) == 0 {
		return false
	}

	matched := 0
	for ordinal := range ParseSelection(input) {
		if ordinal > q.Len() {
			continue
		}
		if _, ok := correct[ordinal]; !ok {
			return false
		}
		matched++
	}
	return matched > 0
}

// ParseSelection turns "1, 3,,2" into {1,2,3}.
// Empty, non-numeric and non-positive pieces are ignored.
func ParseSelection(input string) map[int]struct{} {
	out := make(map[int]struct{})
	for _, piece := range strings.Split(input, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		n, err := strconv.Atoi(piece)
		if err != nil || n <= 0 {
			continue
		}
		out[n] = struct{}{}
	}
	return out
}
