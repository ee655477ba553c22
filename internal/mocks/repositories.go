package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/repository"
)

// MockArticleRepository is a mock implementation of ArticleRepository.
// Detached cross-posting writes concurrently with test assertions, so
// access is guarded by a mutex.
type MockArticleRepository struct {
	mu       sync.Mutex
	Articles map[string]*models.Article

	InsertError       error
	UpdateError       error
	QueryError        error
	UnpinError        error
	SocialUpdateError error

	// ReturnNilOnWrite makes Insert/Update report success with no row
	ReturnNilOnWrite bool

	InsertCalls int
	UpdateCalls int
	UnpinCalls  int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Insert(ctx context.Context, article *models.Article) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InsertCalls++
	if m.InsertError != nil {
		return nil, m.InsertError
	}
	if m.ReturnNilOnWrite {
		return nil, nil
	}
	stored := *article
	m.Articles[article.ID] = &stored
	copied := stored
	return &copied, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateCalls++
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	if m.ReturnNilOnWrite {
		return nil, nil
	}
	if _, ok := m.Articles[article.ID]; !ok {
		return nil, nil
	}
	stored := *article
	m.Articles[article.ID] = &stored
	copied := stored
	return &copied, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryError != nil {
		return nil, m.QueryError
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, field models.SlugField, slug string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryError != nil {
		return nil, m.QueryError
	}
	for _, article := range m.Articles {
		if field == models.SlugFieldEN && article.Slug == slug {
			copied := *article
			return &copied, nil
		}
		if field == models.SlugFieldFR && article.SlugFr != nil && *article.SlugFr == slug {
			copied := *article
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) List(ctx context.Context, filter repository.ArticleFilter) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var articles []*models.Article
	for _, article := range m.Articles {
		if filter.PublishedOnly && !article.Published {
			continue
		}
		copied := *article
		articles = append(articles, &copied)
	}
	return articles, nil
}

func (m *MockArticleRepository) SlugInUse(ctx context.Context, field models.SlugField, slug, excludeID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryError != nil {
		return false, m.QueryError
	}
	for id, article := range m.Articles {
		if id == excludeID {
			continue
		}
		if field == models.SlugFieldEN && article.Slug == slug {
			return true, nil
		}
		if field == models.SlugFieldFR && article.SlugFr != nil && *article.SlugFr == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockArticleRepository) UnpinHeroExcept(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UnpinCalls++
	if m.UnpinError != nil {
		return m.UnpinError
	}
	for otherID, article := range m.Articles {
		if otherID != id {
			article.PinAsHero = false
		}
	}
	return nil
}

func (m *MockArticleRepository) GetPinnedHero(ctx context.Context) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.QueryError != nil {
		return nil, m.QueryError
	}
	for _, article := range m.Articles {
		if article.PinAsHero {
			copied := *article
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockArticleRepository) UpdateSocialResult(ctx context.Context, id string, platform models.Platform, postID, postURL string, postedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SocialUpdateError != nil {
		return m.SocialUpdateError
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil
	}
	post := article.SocialFor(platform)
	post.PostID = &postID
	post.PostURL = &postURL
	post.PostedAt = &postedAt
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Articles), nil
}

// PinnedCount reports how many stored articles are pinned as hero
func (m *MockArticleRepository) PinnedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, article := range m.Articles {
		if article.PinAsHero {
			count++
		}
	}
	return count
}

// MockAuthorRepository is a mock implementation of AuthorRepository
type MockAuthorRepository struct {
	Authors   []*models.Author
	ListError error
}

func NewMockAuthorRepository() *MockAuthorRepository {
	return &MockAuthorRepository{}
}

func (m *MockAuthorRepository) List(ctx context.Context) ([]*models.Author, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Authors, nil
}

func (m *MockAuthorRepository) Exists(ctx context.Context, id string) (bool, error) {
	for _, a := range m.Authors {
		if a.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockAuthorRepository) GetAllIDs(ctx context.Context) ([]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	ids := make([]string, 0, len(m.Authors))
	for _, a := range m.Authors {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (m *MockAuthorRepository) Count(ctx context.Context) (int, error) {
	return len(m.Authors), nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories []*models.Category
	ListError  error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{}
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Categories, nil
}

func (m *MockCategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	for _, c := range m.Categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) GetAllIDs(ctx context.Context) ([]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	ids := make([]string, 0, len(m.Categories))
	for _, c := range m.Categories {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.Categories), nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	Events    []*models.Event
	ListError error
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) List(ctx context.Context, upcomingOnly bool) ([]*models.Event, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Events, nil
}

func (m *MockEventRepository) Count(ctx context.Context) (int, error) {
	return len(m.Events), nil
}

// MockSubscriberRepository is a mock implementation of SubscriberRepository
type MockSubscriberRepository struct {
	Subscribers []*models.NewsletterSubscriber
	InsertError error
}

func NewMockSubscriberRepository() *MockSubscriberRepository {
	return &MockSubscriberRepository{}
}

func (m *MockSubscriberRepository) Insert(ctx context.Context, sub *models.NewsletterSubscriber) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Subscribers = append(m.Subscribers, sub)
	return nil
}

func (m *MockSubscriberRepository) List(ctx context.Context) ([]*models.NewsletterSubscriber, error) {
	return m.Subscribers, nil
}

func (m *MockSubscriberRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, s := range m.Subscribers {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockSubscriberRepository) Count(ctx context.Context) (int, error) {
	return len(m.Subscribers), nil
}

// NewMockRepositories bundles fresh mocks into the aggregate used by
// services and handlers
func NewMockRepositories() (*repository.Repositories, *MockArticleRepository, *MockAuthorRepository, *MockCategoryRepository) {
	articles := NewMockArticleRepository()
	authors := NewMockAuthorRepository()
	categories := NewMockCategoryRepository()

	repos := &repository.Repositories{
		Article:    articles,
		Author:     authors,
		Category:   categories,
		Event:      NewMockEventRepository(),
		Subscriber: NewMockSubscriberRepository(),
	}
	return repos, articles, authors, categories
}
