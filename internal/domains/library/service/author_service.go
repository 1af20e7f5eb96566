package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/repository"
)

type authorService struct {
	store repository.Store
}

func NewAuthorService(store repository.Store) AuthorService {
	return &authorService{store: store}
}

func (s *authorService) GetAll(ctx context.Context) ([]model.Author, error) {
	return s.store.Authors().FindAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	return s.store.Authors().FindByID(ctx, id)
}

func (s *authorService) FindByFullName(ctx context.Context, firstName, lastName string) (*model.Author, error) {
	return s.store.Authors().FindByFullName(ctx, firstName, lastName)
}

func (s *authorService) Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.store.Authors().Create(ctx, &model.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", author.ID).Str("name", author.FullName()).Msg("Author created")
	return author, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.store.Authors().Update(ctx, &model.Author{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	})
}

// Delete refuses to remove an author that books still reference
func (s *authorService) Delete(ctx context.Context, id int64) error {
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		n, err := tx.Books().CountByAuthorID(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return model.ErrAuthorHasBooks
		}
		return tx.Authors().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("Author deleted")
	return nil
}
