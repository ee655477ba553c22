package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/magazine-editorial-api/internal/apperrors"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/repository"
	"github.com/magazine-editorial-api/internal/validation"
	"github.com/rs/zerolog"
)

// newsletterService is the concrete implementation of NewsletterService
type newsletterService struct {
	subscribers repository.SubscriberRepository
	log         zerolog.Logger
}

// newNewsletterService creates a new NewsletterService
func newNewsletterService(subscribers repository.SubscriberRepository, log zerolog.Logger) *newsletterService {
	return &newsletterService{
		subscribers: subscribers,
		log:         log.With().Str("service", "newsletter").Logger(),
	}
}

// Subscribe registers a newsletter signup
func (s *newsletterService) Subscribe(ctx context.Context, email, language string) (*models.NewsletterSubscriber, error) {
	validator := validation.NewValidator()
	if errs := validator.ValidateSubscriber(email, language); len(errs) > 0 {
		return nil, errs
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if language == "" {
		language = "en"
	}

	exists, err := s.subscribers.EmailExists(ctx, email)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	if exists {
		return nil, validation.Errors{
			{Field: "email", Message: "this email is already subscribed", Value: email},
		}
	}

	sub := &models.NewsletterSubscriber{
		ID:        uuid.New().String(),
		Email:     email,
		Language:  language,
		CreatedAt: time.Now(),
	}
	if err := s.subscribers.Insert(ctx, sub); err != nil {
		return nil, apperrors.Classify(err)
	}

	s.log.Info().Str("language", language).Msg("Newsletter subscriber added")
	return sub, nil
}

// List retrieves all subscribers
func (s *newsletterService) List(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	return s.subscribers.List(ctx)
}
