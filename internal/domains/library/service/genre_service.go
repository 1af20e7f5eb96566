package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/repository"
)

type genreService struct {
	store repository.Store
}

func NewGenreService(store repository.Store) GenreService {
	return &genreService{store: store}
}

func (s *genreService) GetAll(ctx context.Context) ([]model.Genre, error) {
	return s.store.Genres().FindAll(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	return s.store.Genres().FindByID(ctx, id)
}

func (s *genreService) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	return s.store.Genres().FindByName(ctx, name)
}

func (s *genreService) Create(ctx context.Context, req model.GenreRequest) (*model.Genre, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	genre, err := s.store.Genres().Create(ctx, &model.Genre{Name: req.Name})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("genre_id", genre.ID).Str("name", genre.Name).Msg("Genre created")
	return genre, nil
}

func (s *genreService) Update(ctx context.Context, id int64, req model.GenreRequest) (*model.Genre, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.store.Genres().Update(ctx, &model.Genre{ID: id, Name: req.Name})
}

func (s *genreService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		n, err := tx.Books().CountByGenreID(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return model.ErrGenreHasBooks
		}
		return tx.Genres().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Info().Int64("genre_id", id).Msg("Genre deleted")
	return nil
}
