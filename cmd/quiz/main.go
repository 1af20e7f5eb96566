package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/config"
	quizShell "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/quiz/shell"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/container"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/logger"
)

// quiz starts the interactive shell; `quiz run` takes one session and exits
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := container.NewQuizContainer(cfg.Quiz)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize quiz")
	}

	console := shell.NewConsole(os.Stdin, os.Stdout)
	commands := quizShell.NewCommands(c.Config, c.Questions, c.Evaluator, console)

	if len(os.Args) > 1 && os.Args[1] == "run" {
		if _, err := commands.Start(ctx, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sh := shell.New("quiz> ", console)
	sh.Register(commands.Commands()...)

	fmt.Println("Type 'start' to begin the test or 'help' to list commands.")
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Shell stopped")
	}
}
