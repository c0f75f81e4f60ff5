// Package services orchestrates the recommendation flows: it validates
// requests, routes existing-user queries, and dispatches to the fusion
// engine or the information-lookup path.
package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vantagelabs/accel-recommender/internal/models"
	"github.com/vantagelabs/accel-recommender/internal/recommend"
	"github.com/vantagelabs/accel-recommender/internal/recommend/index"
	"github.com/vantagelabs/accel-recommender/internal/recommend/router"
	"github.com/vantagelabs/accel-recommender/internal/utils"
)

// Generator is the external text-generation capability.
type Generator interface {
	Generate(ctx context.Context, contextBlock, query string) (string, error)
}

// RecommenderService exposes the four logical operations backing the
// HTTP layer. All state is read-only after construction.
type RecommenderService struct {
	catalog   []models.CatalogItem
	index     *index.Index
	engine    *recommend.Engine
	router    *router.Router
	generator Generator
	companies []string
	topN      int
}

// NewRecommenderService wires the built index, model engine, router and
// generation capability together.
func NewRecommenderService(
	catalog []models.CatalogItem,
	ix *index.Index,
	engine *recommend.Engine,
	r *router.Router,
	generator Generator,
	companies []string,
	topN int,
) *RecommenderService {
	if topN <= 0 {
		topN = 5
	}
	return &RecommenderService{
		catalog:   catalog,
		index:     ix,
		engine:    engine,
		router:    r,
		generator: generator,
		companies: companies,
		topN:      topN,
	}
}

// RecommendForNewUser ranks catalog items against the free text alone.
// Returns recommend.ErrNoMatch when nothing in the catalog resembles
// the input.
func (s *RecommenderService) RecommendForNewUser(ctx context.Context, text string) (string, error) {
	_, span := otel.Tracer("recommender").Start(ctx, "RecommendForNewUser")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return "", models.ErrQueryRequired
	}

	matches := s.index.Query(text, s.topN)
	if len(matches) == 0 {
		span.SetAttributes(attribute.Bool("recommend.no_match", true))
		return "", recommend.ErrNoMatch
	}

	span.SetAttributes(attribute.Int("recommend.results", len(matches)))

	var b strings.Builder
	fmt.Fprintf(&b, "The top %d recommended accelerators for you are:\n", len(matches))
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s, Short description: %s\n", i+1, m.Item.Accelerator, m.Item.ShortDescription)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// RecommendForExistingUser routes the query and dispatches to the
// hybrid engine or the product-information path.
func (s *RecommenderService) RecommendForExistingUser(ctx context.Context, company, text string) (string, error) {
	ctx, span := otel.Tracer("recommender").Start(ctx, "RecommendForExistingUser")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return "", models.ErrQueryRequired
	}
	if strings.TrimSpace(company) == "" {
		return "", models.ErrCompanyRequired
	}

	span.SetAttributes(attribute.String("recommend.company", company))

	destination, err := s.router.Route(ctx, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "routing failed")
		return "", err
	}
	span.SetAttributes(attribute.String("recommend.destination", destination))

	switch destination {
	case router.DestRecommendation:
		return s.engine.Recommend(ctx, company, text, recommend.Options{})
	case router.DestProductInfo:
		return s.answerFromCatalog(ctx, recommend.MatchContext(s.catalog, text), text)
	}
	// Unreachable: the router validates its destinations
	return "", router.ErrUnknownDestination
}

// AnswerFreeformQuery answers a catalog question with generated text
// grounded in the item the query mentions, if any.
func (s *RecommenderService) AnswerFreeformQuery(ctx context.Context, text string) (string, error) {
	ctx, span := otel.Tracer("recommender").Start(ctx, "AnswerFreeformQuery")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return "", models.ErrQueryRequired
	}

	contextBlock := recommend.NoSpecificItem
	if item, ok := recommend.MentionedItem(s.catalog, text); ok {
		contextBlock = recommend.FormatItemDetail(item)
		span.SetAttributes(attribute.String("recommend.mentioned_item", item.Accelerator))
	}

	return s.answerFromCatalog(ctx, contextBlock, text)
}

// ListCompanies returns every company in the adoption history table.
func (s *RecommenderService) ListCompanies() []string {
	return s.companies
}

// answerFromCatalog calls the generation capability and sanitizes the
// answer for API consumption.
func (s *RecommenderService) answerFromCatalog(ctx context.Context, contextBlock, query string) (string, error) {
	answer, err := s.generator.Generate(ctx, contextBlock, query)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}

	answer = utils.StripMarkdown(answer)
	if answer == "" {
		return "", fmt.Errorf("generating answer: model produced no text")
	}
	return answer, nil
}
