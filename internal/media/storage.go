// Package media stores article images in Supabase Storage and hands
// back the public URLs the articles and the cross-poster reference.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/magazine-editorial-api/internal/apperrors"
	"github.com/magazine-editorial-api/internal/config"
	"github.com/magazine-editorial-api/internal/retry"
	"github.com/rs/zerolog"
	storage_go "github.com/supabase-community/storage-go"
	supabase "github.com/supabase-community/supabase-go"
)

// Storage uploads images and returns their public URLs
type Storage interface {
	UploadImage(ctx context.Context, filename, contentType string, data io.Reader) (string, error)
}

// supabaseStorage is the concrete implementation of Storage
type supabaseStorage struct {
	client   *supabase.Client
	bucket   string
	retryCfg retry.Config
	log      zerolog.Logger
}

// NewStorage creates a Supabase-backed image store
func NewStorage(cfg *config.MediaConfig, retryCfg retry.Config, log zerolog.Logger) (Storage, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required for media storage")
	}

	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	// Uploads only retry on network failures; a 4xx from storage is
	// not going to change on a second attempt
	retryCfg.RetryIf = func(err error) bool {
		return apperrors.Classify(err).Kind == apperrors.KindNetwork
	}

	return &supabaseStorage{
		client:   client,
		bucket:   cfg.Bucket,
		retryCfg: retryCfg,
		log:      log.With().Str("component", "media").Logger(),
	}, nil
}

// UploadImage stores the image under a month-partitioned key and
// returns its public URL
func (s *supabaseStorage) UploadImage(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	// Buffer the upload so retries can replay it
	buf, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	key := fmt.Sprintf("%s/%s%s",
		time.Now().Format("2006/01"),
		uuid.New().String()[:8],
		filepath.Ext(filename),
	)

	_, err = retry.DoValue(ctx, s.retryCfg, func(ctx context.Context) (storage_go.FileUploadResponse, error) {
		return s.client.Storage.UploadFile(s.bucket, key, bytes.NewReader(buf), storage_go.FileOptions{
			ContentType: &contentType,
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	resp := s.client.Storage.GetPublicUrl(s.bucket, key)

	s.log.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Int("size_bytes", len(buf)).
		Msg("Image uploaded")

	return resp.SignedURL, nil
}
