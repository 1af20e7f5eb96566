package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/config"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/jwt"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	// `api token --subject NAME --role admin` prints a bearer token and exits
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(cfg, os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func printToken(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "admin", "token subject")
	role := fs.String("role", jwt.RoleAdmin, "token role: admin or reader")
	if err := fs.Parse(args); err != nil {
		return err
	}

	expiry := time.Duration(cfg.JWT.AccessTokenExpiry) * time.Minute
	token, err := jwt.NewManager(cfg.JWT.Secret, expiry).GenerateAccessToken(*subject, *role)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	fmt.Println(token)
	return nil
}
