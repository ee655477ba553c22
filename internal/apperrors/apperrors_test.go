package apperrors

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/lib/pq"
	"github.com/magazine-editorial-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUniqueViolation(t *testing.T) {
	err := &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "articles_slug_key"`}

	c := Classify(err)
	require.NotNil(t, c)
	assert.Equal(t, KindValidation, c.Kind)
	assert.False(t, c.Retryable)
	assert.NotEmpty(t, c.Suggestions)
}

func TestClassifyForeignKeyViolation(t *testing.T) {
	err := fmt.Errorf("insert article: %w", &pq.Error{Code: "23503"})

	c := Classify(err)
	assert.Equal(t, KindValidation, c.Kind)
	assert.False(t, c.Retryable)
}

func TestClassifyNetwork(t *testing.T) {
	err := &url.Error{Op: "Post", URL: "https://example.com", Err: errors.New("connection refused")}

	c := Classify(err)
	assert.Equal(t, KindNetwork, c.Kind)
	assert.True(t, c.Retryable)
}

func TestClassifyHTTPStatuses(t *testing.T) {
	tests := []struct {
		status        int
		wantKind      Kind
		wantRetryable bool
	}{
		{401, KindAuthentication, false},
		{403, KindPermission, false},
		{500, KindDatabase, true},
		{502, KindDatabase, true},
		{599, KindDatabase, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			c := Classify(&HTTPError{Status: tt.status})
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantRetryable, c.Retryable)
		})
	}
}

func TestClassifyAuthMessage(t *testing.T) {
	c := Classify(errors.New("JWT expired"))
	assert.Equal(t, KindAuthentication, c.Kind)
	assert.False(t, c.Retryable)
}

func TestClassifyPermissionMessage(t *testing.T) {
	c := Classify(errors.New("permission denied for table articles"))
	assert.Equal(t, KindPermission, c.Kind)
}

func TestClassifyValidationErrors(t *testing.T) {
	err := validation.Errors{{Field: "title", Message: "title is required"}}

	c := Classify(err)
	assert.Equal(t, KindValidation, c.Kind)
	assert.False(t, c.Retryable)
}

func TestClassifyFallbackUnknown(t *testing.T) {
	c := Classify(errors.New("something odd happened"))
	assert.Equal(t, KindUnknown, c.Kind)
	assert.False(t, c.Retryable)
	assert.NotEmpty(t, c.Suggestions)
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassifyPassthrough(t *testing.T) {
	original := Classify(&HTTPError{Status: 503})
	again := Classify(original)
	assert.Same(t, original, again)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&HTTPError{Status: 500}))
	assert.False(t, IsRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, IsRetryable(nil))
}

func TestClassifiedUnwrap(t *testing.T) {
	inner := &pq.Error{Code: "23505"}
	c := Classify(fmt.Errorf("save: %w", inner))

	var pqErr *pq.Error
	assert.True(t, errors.As(c, &pqErr))
}
