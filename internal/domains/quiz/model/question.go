package model

import (
	"sort"
	"strconv"
	"strings"
)

// Answer is one selectable option of a question. Correctness is fixed at load time.
type Answer struct {
	Text    string
	Correct bool
}

func (a Answer) String() string {
	return a.Text
}

// Question is an immutable quiz question.
// Answers are addressed by their 1-based ordinal, assigned densely in file order.
type Question struct {
	Text        string
	MultiChoice bool
	answers     []Answer
}

// NewQuestion numbers answers 1..len(answers) in the given order
func NewQuestion(text string, multiChoice bool, answers []Answer) Question {
	copied := make([]Answer, len(answers))
	copy(copied, answers)
	return Question{
		Text:        text,
		MultiChoice: multiChoice,
		answers:     copied,
	}
}

// Len returns the number of answers
func (q Question) Len() int {
	return len(q.answers)
}

// Answer returns the answer at a 1-based ordinal
func (q Question) Answer(ordinal int) (Answer, bool) {
	if ordinal < 1 || ordinal > len(q.answers) {
		return Answer{}, false
	}
	return q.answers[ordinal-1], true
}

// Answers returns a copy keyed by ordinal
func (q Question) Answers() map[int]Answer {
	out := make(map[int]Answer, len(q.answers))
	for i, a := range q.answers {
		out[i+1] = a
	}
	return out
}

// Ordinals lists every ordinal in ascending order
func (q Question) Ordinals() []int {
	out := make([]int, len(q.answers))
	for i := range q.answers {
		out[i] = i + 1
	}
	return out
}

// CorrectOrdinals is the set of ordinals whose answer is marked correct
func (q Question) CorrectOrdinals() map[int]struct{} {
	out := make(map[int]struct{})
	for i, a := range q.answers {
		if a.Correct {
			out[i+1] = struct{}{}
		}
	}
	return out
}

// SortedCorrectOrdinals is CorrectOrdinals as an ascending slice
func (q Question) SortedCorrectOrdinals() []int {
	set := q.CorrectOrdinals()
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// String renders the question text followed by "n. answer" lines
func (q Question) String() string {
	var sb strings.Builder
	sb.WriteString(q.Text)
	sb.WriteString("\n")
	for i, a := range q.answers {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(a.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
