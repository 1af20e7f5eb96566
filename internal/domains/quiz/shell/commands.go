package shell

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/config"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

// Commands exposes the quiz over the interactive shell
type Commands struct {
	cfg       config.QuizConfig
	questions service.QuestionService
	evaluator service.Evaluator
	console   *shell.Console
}

func NewCommands(cfg config.QuizConfig, questions service.QuestionService, evaluator service.Evaluator, console *shell.Console) *Commands {
	return &Commands{
		cfg:       cfg,
		questions: questions,
		evaluator: evaluator,
		console:   console,
	}
}

func (c *Commands) Commands() []shell.Command {
	return []shell.Command{
		{
			Name:    "start",
			Aliases: []string{"test", "run"},
			Help:    "Start the testing session",
			Run:     c.Start,
		},
		{
			Name:    "questions",
			Aliases: []string{"list"},
			Usage:   "questions [--lang en|ru]",
			Help:    "List all available questions",
			Run:     c.ListQuestions,
		},
		{
			Name:    "config",
			Aliases: []string{"settings"},
			Help:    "Show application configuration",
			Run:     c.ShowConfig,
		},
	}
}

// Start runs one session against the shared console
func (c *Commands) Start(ctx context.Context, _ []string) (string, error) {
	out := c.console.Writer()
	fmt.Fprintln(out, "Starting test session...")
	fmt.Fprintln(out, "========================")

	session := service.NewSession(c.questions, c.evaluator, c.cfg.PassingLimit, c.console, out)
	if _, err := session.Run(ctx); err != nil {
		return "", err
	}
	return "", nil
}

func (c *Commands) ListQuestions(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("questions")
	lang := fs.String("lang", c.cfg.DefaultLocale, "language: en or ru")
	fs.StringVar(lang, "l", c.cfg.DefaultLocale, "shorthand for --lang")
	if err := shell.Parse(fs, args); err != nil {
		return "", err
	}

	tag := language.English
	if strings.EqualFold(*lang, "ru") {
		tag = language.Russian
	}

	questions, err := c.questions.GetAll(ctx, tag)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Questions (%s) ===\n", tag)
	fmt.Fprintf(&sb, "Total: %d\n", len(questions))
	fmt.Fprintf(&sb, "Passing limit: %d\n", c.cfg.PassingLimit)
	sb.WriteString("=======================\n")

	for i, q := range questions {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, q.Text)
		kind := "Single choice"
		if q.MultiChoice {
			kind = "Multiple choice"
		}
		fmt.Fprintf(&sb, "   Type: %s\n", kind)
		for _, ordinal := range q.Ordinals() {
			answer, _ := q.Answer(ordinal)
			marker := " "
			if answer.Correct {
				marker = "✓"
			}
			fmt.Fprintf(&sb, "   [%s] %d. %s\n", marker, ordinal, answer.Text)
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (c *Commands) ShowConfig(context.Context, []string) (string, error) {
	source := c.cfg.ResourceDir
	if source == "" {
		source = "embedded"
	}

	var sb strings.Builder
	sb.WriteString("=== Application Configuration ===\n")
	fmt.Fprintf(&sb, "Question source: %s\n", source)
	fmt.Fprintf(&sb, "CSV Resource: %s\n", c.cfg.CSVResource)
	fmt.Fprintf(&sb, "CSV Pattern: %s\n", c.cfg.CSVResourcePattern)
	fmt.Fprintf(&sb, "Passing Limit: %d\n", c.cfg.PassingLimit)
	fmt.Fprintf(&sb, "Default Locale: %s\n", c.cfg.DefaultLocale)
	fmt.Fprintf(&sb, "Answer Policy: %s\n", c.cfg.AnswerPolicy)
	sb.WriteString("===============================")
	return sb.String(), nil
}
