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
	libraryShell "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/shell"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/container"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/logger"
)

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

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Library shell stopped")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	sh := shell.New("library> ", shell.NewConsole(os.Stdin, os.Stdout))
	sh.Register(libraryShell.NewCommands(c.BookService, c.AuthorService, c.GenreService, c.CommentService).Commands()...)

	fmt.Printf("Library shell (%s store). Type 'help' to list commands.\n", cfg.Library.Store)
	return sh.Run(ctx)
}
