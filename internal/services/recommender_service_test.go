package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vantagelabs/accel-recommender/internal/models"
	"github.com/vantagelabs/accel-recommender/internal/recommend"
	"github.com/vantagelabs/accel-recommender/internal/recommend/adoption"
	"github.com/vantagelabs/accel-recommender/internal/recommend/index"
	"github.com/vantagelabs/accel-recommender/internal/recommend/router"
)

type stubClassifier struct {
	label string
	err   error
	calls int
}

func (s *stubClassifier) Classify(_ context.Context, _, _ string, _ []string) (string, error) {
	s.calls++
	return s.label, s.err
}

type stubGenerator struct {
	answer     string
	err        error
	gotContext string
	calls      int
}

func (s *stubGenerator) Generate(_ context.Context, contextBlock, _ string) (string, error) {
	s.calls++
	s.gotContext = contextBlock
	return s.answer, s.err
}

func testService(t *testing.T, classifier *stubClassifier, generator *stubGenerator) *RecommenderService {
	t.Helper()

	catalog := []models.CatalogItem{
		{
			Accelerator:      "Zendesk Flows",
			Product:          "Zendesk",
			Category:         "CRM",
			Description:      "customer support automation",
			ShortDescription: "ticket routing flows",
			Type:             "workflow",
		},
		{
			Accelerator:      "QuickStart Looker",
			Product:          "Looker",
			Category:         "Analytics",
			Description:      "sales dashboards",
			ShortDescription: "dashboard starter kit",
			Type:             "starter",
		},
	}

	ix, err := index.Build(catalog)
	if err != nil {
		t.Fatalf("index.Build() error: %v", err)
	}

	model, err := adoption.Build([]models.AdoptionRecord{
		{Company: "Acme", Product: "Zendesk", Implemented: true},
		{Company: "Globex", Product: "Zendesk", Implemented: true},
		{Company: "Globex", Product: "Looker", Implemented: true},
	})
	if err != nil {
		t.Fatalf("adoption.Build() error: %v", err)
	}

	engine := recommend.NewEngine(model, ix, 0.7, 0.3, 5)
	return NewRecommenderService(catalog, ix, engine, router.New(classifier), generator, []string{"Acme", "Globex"}, 5)
}

func TestRecommendForNewUser(t *testing.T) {
	s := testService(t, &stubClassifier{}, &stubGenerator{})

	t.Run("ranked list with short descriptions", func(t *testing.T) {
		got, err := s.RecommendForNewUser(context.Background(), "customer support")
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if !strings.HasPrefix(got, "The top 2 recommended accelerators for you are:") {
			t.Errorf("unexpected prefix: %q", got)
		}
		if !strings.Contains(got, "1. Zendesk Flows, Short description: ticket routing flows") {
			t.Errorf("first entry missing or wrong: %q", got)
		}
	})

	t.Run("empty text fails validation before any lookup", func(t *testing.T) {
		_, err := s.RecommendForNewUser(context.Background(), "   ")
		if !errors.Is(err, models.ErrQueryRequired) {
			t.Fatalf("error = %v, want ErrQueryRequired", err)
		}
	})

	t.Run("no match is a distinct outcome", func(t *testing.T) {
		_, err := s.RecommendForNewUser(context.Background(), "quantum llamas")
		if !errors.Is(err, recommend.ErrNoMatch) {
			t.Fatalf("error = %v, want ErrNoMatch", err)
		}
	})
}

func TestRecommendForExistingUserValidation(t *testing.T) {
	classifier := &stubClassifier{label: router.DestRecommendation}
	s := testService(t, classifier, &stubGenerator{})

	if _, err := s.RecommendForExistingUser(context.Background(), "Acme", ""); !errors.Is(err, models.ErrQueryRequired) {
		t.Errorf("missing text: error = %v, want ErrQueryRequired", err)
	}
	if _, err := s.RecommendForExistingUser(context.Background(), "", "dashboards"); !errors.Is(err, models.ErrCompanyRequired) {
		t.Errorf("missing company: error = %v, want ErrCompanyRequired", err)
	}
	if classifier.calls != 0 {
		t.Errorf("classifier called %d times before validation, want 0", classifier.calls)
	}
}

func TestRecommendForExistingUserRecommendationPath(t *testing.T) {
	generator := &stubGenerator{}
	s := testService(t, &stubClassifier{label: router.DestRecommendation}, generator)

	got, err := s.RecommendForExistingUser(context.Background(), "Acme", "customer support")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if !strings.HasPrefix(got, "The recommended products for your company based on your input 'customer support' are:") {
		t.Errorf("unexpected sentence: %q", got)
	}
	if !strings.Contains(got, "Zendesk") {
		t.Errorf("Zendesk missing from %q", got)
	}
	if generator.calls != 0 {
		t.Error("generation must not run on the recommendation path")
	}
}

func TestRecommendForExistingUserProductInfoPath(t *testing.T) {
	generator := &stubGenerator{answer: "**Zendesk Flows** routes tickets."}
	s := testService(t, &stubClassifier{label: router.DestProductInfo}, generator)

	got, err := s.RecommendForExistingUser(context.Background(), "Acme", "zendesk flows")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if got != "Zendesk Flows routes tickets." {
		t.Errorf("answer = %q, want markdown stripped", got)
	}
	if !strings.Contains(generator.gotContext, "Zendesk Flows") {
		t.Errorf("generator context = %q, want matching catalog row", generator.gotContext)
	}
}

func TestRecommendForExistingUserRoutingError(t *testing.T) {
	s := testService(t, &stubClassifier{label: "chitchat"}, &stubGenerator{})

	_, err := s.RecommendForExistingUser(context.Background(), "Acme", "hello")
	if !errors.Is(err, router.ErrUnknownDestination) {
		t.Fatalf("error = %v, want ErrUnknownDestination", err)
	}
}

func TestAnswerFreeformQuery(t *testing.T) {
	t.Run("mentioned item grounds the context", func(t *testing.T) {
		generator := &stubGenerator{answer: "It is a dashboard starter."}
		s := testService(t, &stubClassifier{}, generator)

		got, err := s.AnswerFreeformQuery(context.Background(), "Tell me about QuickStart Looker")
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if got != "It is a dashboard starter." {
			t.Errorf("answer = %q", got)
		}
		if !strings.Contains(generator.gotContext, "QuickStart Looker") {
			t.Errorf("context = %q, want item detail", generator.gotContext)
		}
	})

	t.Run("no mentioned item uses placeholder context", func(t *testing.T) {
		generator := &stubGenerator{answer: "I can only answer catalog questions."}
		s := testService(t, &stubClassifier{}, generator)

		if _, err := s.AnswerFreeformQuery(context.Background(), "what accelerators exist"); err != nil {
			t.Fatalf("error: %v", err)
		}
		if generator.gotContext != recommend.NoSpecificItem {
			t.Errorf("context = %q, want %q", generator.gotContext, recommend.NoSpecificItem)
		}
	})

	t.Run("generation failure surfaces", func(t *testing.T) {
		boom := errors.New("model down")
		s := testService(t, &stubClassifier{}, &stubGenerator{err: boom})

		if _, err := s.AnswerFreeformQuery(context.Background(), "anything"); !errors.Is(err, boom) {
			t.Fatalf("error = %v, want wrapped model error", err)
		}
	})
}

func TestListCompanies(t *testing.T) {
	s := testService(t, &stubClassifier{}, &stubGenerator{})

	companies := s.ListCompanies()
	if len(companies) != 2 || companies[0] != "Acme" {
		t.Errorf("companies = %v, want [Acme Globex]", companies)
	}
}
