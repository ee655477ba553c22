package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/magazine-editorial-api/internal/config"
	"github.com/magazine-editorial-api/internal/mocks"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/magazine-editorial-api/internal/service"
	"github.com/rs/zerolog"
)

const (
	apiAuthorID   = "7b6d3c1e-5f7a-4a2b-9c8d-1e2f3a4b5c6d"
	apiCategoryID = "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"
)

type testServer struct {
	router   *gin.Engine
	services *service.Services
	articles *mocks.MockArticleRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	repos, articles, _, _ := mocks.NewMockRepositories()
	cfg := &config.Config{}
	services := service.NewServices(repos, mocks.NewMockPoster(), cfg, zerolog.Nop())
	router := NewRouter(services, nil, repos, cfg, zerolog.Nop())

	return &testServer{router: router, services: services, articles: articles}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return parsed
}

func articlePayload() map[string]any {
	return map[string]any{
		"title":       "Kigali's Bus Reform",
		"content":     "The city is rethinking its transit network.",
		"author_id":   apiAuthorID,
		"category_id": apiCategoryID,
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeJSON(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.articles.Articles["a1"] = &models.Article{ID: "a1", Title: "T", Slug: "t"}

	w := ts.do(t, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeJSON(t, w)
	db, ok := body["database"].(map[string]any)
	if !ok {
		t.Fatalf("missing database section in %v", body)
	}
	if db["articles"] != float64(1) {
		t.Errorf("articles count = %v, want 1", db["articles"])
	}
}

func TestCreateArticle(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/articles", articlePayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["slug"] != "kigalis-bus-reform" {
		t.Errorf("slug = %v, want generated from title", body["slug"])
	}
	if body["id"] == "" {
		t.Error("expected a generated id")
	}
}

func TestCreateArticleValidationFailure(t *testing.T) {
	ts := newTestServer(t)

	payload := articlePayload()
	payload["title"] = ""

	w := ts.do(t, http.MethodPost, "/v1/articles", payload)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["kind"] != "validation" {
		t.Errorf("kind = %v, want validation", body["kind"])
	}
	fields, ok := body["fields"].([]any)
	if !ok || len(fields) == 0 {
		t.Errorf("expected per-field detail, got %v", body["fields"])
	}
}

func TestCreateArticleMalformedBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/articles", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateArticle(t *testing.T) {
	ts := newTestServer(t)

	created := decodeJSON(t, ts.do(t, http.MethodPost, "/v1/articles", articlePayload()))
	id := created["id"].(string)

	payload := articlePayload()
	payload["title"] = "Updated Title"
	payload["slug"] = "kigalis-bus-reform"

	w := ts.do(t, http.MethodPut, "/v1/articles/"+id, payload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["title"] != "Updated Title" {
		t.Errorf("title = %v, want updated", body["title"])
	}
}

func TestUpdateMissingArticle(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPut, "/v1/articles/11111111-2222-3333-4444-555555555555", articlePayload())
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["retryable"] != false {
		t.Errorf("retryable = %v, want false", body["retryable"])
	}
}

func TestGetArticleNotFound(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/v1/articles/unknown", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestSlugAvailability(t *testing.T) {
	ts := newTestServer(t)
	ts.articles.Articles["a1"] = &models.Article{ID: "a1", Title: "T", Slug: "bus-reform"}

	w := ts.do(t, http.MethodGet, "/v1/slug-availability?slug=bus-reform", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeJSON(t, w)
	if body["available"] != false {
		t.Errorf("available = %v, want false", body["available"])
	}
	suggestions, ok := body["suggestions"].([]any)
	if !ok || len(suggestions) != 4 {
		t.Errorf("suggestions = %v, want 4 alternatives", body["suggestions"])
	}

	w = ts.do(t, http.MethodGet, "/v1/slug-availability?slug=something-else", nil)
	if decodeJSON(t, w)["available"] != true {
		t.Error("expected unused slug to be available")
	}
}

func TestSlugAvailabilityRequiresSlug(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/v1/slug-availability", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSlugAvailabilityRejectsUnknownField(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/v1/slug-availability?slug=x-y&field=slug_de", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHeroArticle(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/v1/hero-article", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 with no pinned hero", w.Code)
	}

	ts.articles.Articles["a1"] = &models.Article{ID: "a1", Title: "T", Slug: "t", PinAsHero: true}
	w = ts.do(t, http.MethodGet, "/v1/hero-article", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if decodeJSON(t, w)["id"] != "a1" {
		t.Error("expected the pinned article")
	}
}

func TestSocialStatus(t *testing.T) {
	ts := newTestServer(t)
	postID := "tw-1"
	postedAt := time.Now()
	ts.articles.Articles["a1"] = &models.Article{
		ID:    "a1",
		Title: "T",
		Slug:  "t",
		Twitter: models.SocialPost{
			Enabled:  true,
			PostID:   &postID,
			PostedAt: &postedAt,
		},
	}

	w := ts.do(t, http.MethodGet, "/v1/articles/a1/social-status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeJSON(t, w)
	platforms := body["platforms"].(map[string]any)
	twitter := platforms["twitter"].(map[string]any)
	if twitter["post_id"] != "tw-1" {
		t.Errorf("twitter post_id = %v, want tw-1", twitter["post_id"])
	}
	linkedin := platforms["linkedin"].(map[string]any)
	if linkedin["enabled"] != false {
		t.Errorf("linkedin enabled = %v, want false", linkedin["enabled"])
	}
}

func TestReferenceData(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/v1/reference-data", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	for _, key := range []string{"authors", "categories", "events"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing %q in reference data", key)
		}
	}
}

func TestNewsletterSubscribe(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/newsletter/subscriptions", map[string]any{
		"email":    "Reader@Example.com",
		"language": "fr",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["email"] != "reader@example.com" {
		t.Errorf("email = %v, want normalized lowercase", body["email"])
	}

	// Duplicate signups surface as field-level validation failures
	w = ts.do(t, http.MethodPost, "/v1/newsletter/subscriptions", map[string]any{
		"email": "reader@example.com",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate status = %d, want 422: %s", w.Code, w.Body.String())
	}
}

func TestNewsletterSubscribeInvalidEmail(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/newsletter/subscriptions", map[string]any{
		"email": "not-an-email",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
}

func TestMediaUploadUnconfigured(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/media", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 with no storage configured", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/articles", nil)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow-origin = %q, want *", got)
	}
}
