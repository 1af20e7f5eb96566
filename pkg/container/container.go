package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/config"
	libraryHandler "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/handler"
	libraryRepo "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/repository"
	libraryService "github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/infrastructure/database"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/pkg/jwt"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the library dependency graph.
// Initialization order: config, store, services, handlers.
type Container struct {
	Config     *config.Config
	JWTManager *jwt.Manager

	// Exactly one of DB and Gorm is set, depending on LIBRARY_STORE
	DB    *database.PostgresDB
	Gorm  *gorm.DB
	Store libraryRepo.Store

	AuthorService  libraryService.AuthorService
	GenreService   libraryService.GenreService
	BookService    libraryService.BookService
	CommentService libraryService.CommentService

	Handlers libraryHandler.Handlers
}

// NewContainer connects the configured store and wires the library on top of it
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{
		Config:     cfg,
		JWTManager: jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute),
	}

	// ========================================
	// STEP 1: STORE
	// ========================================
	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: SERVICES
	// ========================================
	c.AuthorService = libraryService.NewAuthorService(c.Store)
	c.GenreService = libraryService.NewGenreService(c.Store)
	c.BookService = libraryService.NewBookService(c.Store)
	c.CommentService = libraryService.NewCommentService(c.Store)

	// ========================================
	// STEP 3: HANDLERS
	// ========================================
	c.Handlers = libraryHandler.Handlers{
		Author:  libraryHandler.NewAuthorHandler(c.AuthorService),
		Genre:   libraryHandler.NewGenreHandler(c.GenreService),
		Book:    libraryHandler.NewBookHandler(c.BookService),
		Comment: libraryHandler.NewCommentHandler(c.CommentService),
	}

	log.Info().Str("store", cfg.Library.Store).Msg("[CONTAINER] library initialized")
	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	lib := c.Config.Library

	if lib.Store == config.StoreSQL {
		pg, err := c.connectPostgres(ctx)
		if err != nil {
			return err
		}
		c.DB = pg
		if err := database.Migrate(ctx, pg.Pool); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		c.Store = libraryRepo.NewPostgresStore(pg.Pool)
		return nil
	}

	var (
		db  *gorm.DB
		err error
	)
	switch lib.ORMDriver {
	case config.DriverSQLite:
		db, err = database.OpenGormSQLite(lib.SQLitePath)
	default:
		var dbConfig *database.DBConfig
		if dbConfig, err = config.LoadDatabaseConfig(); err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}
		db, err = database.OpenGormPostgres(dbConfig)
	}
	if err != nil {
		return err
	}
	c.Gorm = db

	if err := libraryRepo.AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	c.Store = libraryRepo.NewGormStore(db)
	log.Info().Str("driver", lib.ORMDriver).Msg("[CONTAINER] gorm store ready")
	return nil
}

func (c *Container) connectPostgres(ctx context.Context) (*database.PostgresDB, error) {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	pg := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := pg.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pg.HealthCheck(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Info().Str("host", dbConfig.Host).Str("db", dbConfig.DBName).Msg("[CONTAINER] postgres connected")
	return pg, nil
}

// Ping reports whether the active store's database is reachable
func (c *Container) Ping(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.HealthCheck(ctx)
	}
	if c.Gorm != nil {
		sqlDB, err := c.Gorm.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
	return fmt.Errorf("store is not initialized")
}

// Cleanup releases database connections; safe on a partially built container
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Gorm != nil {
		if sqlDB, err := c.Gorm.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Warn().Err(err).Msg("[CONTAINER] failed to close gorm database")
			}
		}
	}
	log.Debug().Msg("[CONTAINER] cleanup completed")
}
