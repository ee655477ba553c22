package service

import (
	"context"

	"github.com/magazine-editorial-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// referenceService is the concrete implementation of ReferenceService
type referenceService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newReferenceService creates a new ReferenceService
func newReferenceService(repos *repository.Repositories, log zerolog.Logger) *referenceService {
	return &referenceService{
		repos: repos,
		log:   log.With().Str("service", "reference").Logger(),
	}
}

// GetReferenceData loads the admin form's dropdown sources in parallel
func (s *referenceService) GetReferenceData(ctx context.Context) (*ReferenceData, error) {
	var data ReferenceData

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		authors, err := s.repos.Author.List(ctx)
		if err != nil {
			return err
		}
		data.Authors = authors
		return nil
	})
	g.Go(func() error {
		categories, err := s.repos.Category.List(ctx)
		if err != nil {
			return err
		}
		data.Categories = categories
		return nil
	})
	g.Go(func() error {
		events, err := s.repos.Event.List(ctx, true)
		if err != nil {
			return err
		}
		data.Events = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
