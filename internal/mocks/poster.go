package mocks

import (
	"context"
	"sync"

	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/social"
)

// MockPoster is a mock implementation of social.Poster
type MockPoster struct {
	mu sync.Mutex

	// Results is returned from every PostAll call
	Results []social.Result

	Calls       int
	LastArticle *models.Article
}

func NewMockPoster() *MockPoster {
	return &MockPoster{}
}

func (m *MockPoster) PostAll(ctx context.Context, article *models.Article) []social.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.LastArticle = article
	return m.Results
}

// CallCount returns how many times PostAll ran
func (m *MockPoster) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
