package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/magazine-editorial-api/internal/apperrors"
	"github.com/magazine-editorial-api/internal/mocks"
	"github.com/magazine-editorial-api/internal/models"
	"github.com/rs/zerolog"
)

func newTestSlugService(t *testing.T) (*slugService, *mocks.MockArticleRepository) {
	t.Helper()
	articles := mocks.NewMockArticleRepository()
	return newSlugService(articles, zerolog.Nop()), articles
}

func storeArticle(articles *mocks.MockArticleRepository, id, enSlug, frSlug string) {
	a := &models.Article{ID: id, Slug: enSlug}
	if frSlug != "" {
		a.SlugFr = &frSlug
	}
	articles.Articles[id] = a
}

func TestCheckAvailabilityFreeSlug(t *testing.T) {
	svc, _ := newTestSlugService(t)

	res := svc.CheckAvailability(context.Background(), SlugCheckRequest{Slug: "bus-reform"})
	if !res.Available || res.Err != nil {
		t.Errorf("got available=%v err=%v, want free slug", res.Available, res.Err)
	}
}

func TestCheckAvailabilityTakenSlug(t *testing.T) {
	svc, articles := newTestSlugService(t)
	storeArticle(articles, "a1", "bus-reform", "")

	res := svc.CheckAvailability(context.Background(), SlugCheckRequest{Slug: "bus-reform"})
	if res.Available {
		t.Fatal("expected slug to be reported taken")
	}
	if len(res.Suggestions) != 4 {
		t.Errorf("suggestions = %v, want exactly 4 alternatives", res.Suggestions)
	}
}

func TestCheckAvailabilityExcludesOwnArticle(t *testing.T) {
	svc, articles := newTestSlugService(t)
	storeArticle(articles, "a1", "bus-reform", "")

	res := svc.CheckAvailability(context.Background(), SlugCheckRequest{Slug: "bus-reform", ExcludeID: "a1"})
	if !res.Available {
		t.Error("an article must not collide with its own slug")
	}
}

func TestCheckAvailabilityFrenchField(t *testing.T) {
	svc, articles := newTestSlugService(t)
	storeArticle(articles, "a1", "bus-reform", "reforme-des-bus")

	res := svc.CheckAvailability(context.Background(), SlugCheckRequest{
		Slug:  "reforme-des-bus",
		Field: models.SlugFieldFR,
	})
	if res.Available {
		t.Error("expected french slug to be reported taken")
	}

	res = svc.CheckAvailability(context.Background(), SlugCheckRequest{
		Slug:  "bus-reform",
		Field: models.SlugFieldFR,
	})
	if !res.Available {
		t.Error("english slug must not block the french column")
	}
}

func TestCheckAvailabilityShortCircuitsFragments(t *testing.T) {
	svc, articles := newTestSlugService(t)
	articles.QueryError = errors.New("must not be queried")

	for _, fragment := range []string{"", "a"} {
		res := svc.CheckAvailability(context.Background(), SlugCheckRequest{Slug: fragment})
		if !res.Available || res.Err != nil {
			t.Errorf("fragment %q: got available=%v err=%v, want immediate pass", fragment, res.Available, res.Err)
		}
	}
}

func TestCheckAvailabilityFailsClosed(t *testing.T) {
	svc, articles := newTestSlugService(t)
	articles.QueryError = errors.New("connection refused")

	res := svc.CheckAvailability(context.Background(), SlugCheckRequest{Slug: "bus-reform"})
	if res.Available {
		t.Fatal("an unverifiable slug must be reported unavailable")
	}
	var classified *apperrors.Classified
	if !errors.As(res.Err, &classified) {
		t.Fatalf("expected a classified error, got %T: %v", res.Err, res.Err)
	}
}

func TestCheckLaterDebounces(t *testing.T) {
	svc, articles := newTestSlugService(t)
	storeArticle(articles, "a1", "bus-reform", "")

	results := make(chan SlugCheckResult, 3)
	svc.CheckLater(SlugCheckRequest{Slug: "bus"}, func(r SlugCheckResult) { results <- r })
	svc.CheckLater(SlugCheckRequest{Slug: "bus-ref"}, func(r SlugCheckResult) { results <- r })
	svc.CheckLater(SlugCheckRequest{Slug: "bus-reform"}, func(r SlugCheckResult) { results <- r })

	select {
	case res := <-results:
		if res.Available {
			t.Error("final candidate is taken, expected unavailable")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("debounced check never fired")
	}

	select {
	case res := <-results:
		t.Errorf("superseded checks must not fire, got %+v", res)
	case <-time.After(700 * time.Millisecond):
	}
}
