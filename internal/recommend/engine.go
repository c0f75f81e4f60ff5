// Package recommend implements the hybrid recommendation engine: the
// weighted fusion of the collaborative adoption model with the
// content-based catalog index.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vantagelabs/accel-recommender/internal/recommend/adoption"
	"github.com/vantagelabs/accel-recommender/internal/recommend/index"
)

// Options are the per-call fusion knobs. Zero values fall back to the
// engine defaults.
type Options struct {
	CollaborativeWeight float64
	ContentWeight       float64
	TopN                int
}

// ScoredProduct is one product with its accumulated fused score.
type ScoredProduct struct {
	Product string
	Score   float64
}

// Engine combines the adoption model and the catalog index into one
// ranked recommendation per (company, free text) pair.
type Engine struct {
	model *adoption.Model
	index *index.Index
	cache *Cache

	defaultCollabWeight  float64
	defaultContentWeight float64
	defaultTopN          int
}

// NewEngine creates the fusion engine with the configured default
// weights. The model and index must already be built.
func NewEngine(model *adoption.Model, ix *index.Index, collabWeight, contentWeight float64, topN int) *Engine {
	if collabWeight <= 0 {
		collabWeight = 0.7
	}
	if contentWeight <= 0 {
		contentWeight = 0.3
	}
	if topN <= 0 {
		topN = 5
	}
	return &Engine{
		model:                model,
		index:                ix,
		cache:                NewCache(2*time.Minute, 500),
		defaultCollabWeight:  collabWeight,
		defaultContentWeight: contentWeight,
		defaultTopN:          topN,
	}
}

// NewEngineWithCache is NewEngine with a caller-sized response cache.
func NewEngineWithCache(model *adoption.Model, ix *index.Index, collabWeight, contentWeight float64, topN int, cache *Cache) *Engine {
	e := NewEngine(model, ix, collabWeight, contentWeight, topN)
	if cache != nil {
		e.cache = cache
	}
	return e
}

func (e *Engine) resolve(opts Options) Options {
	if opts.CollaborativeWeight <= 0 {
		opts.CollaborativeWeight = e.defaultCollabWeight
	}
	if opts.ContentWeight <= 0 {
		opts.ContentWeight = e.defaultContentWeight
	}
	if opts.TopN <= 0 {
		opts.TopN = e.defaultTopN
	}
	return opts
}

// Fuse runs both ranking sources independently and accumulates their
// weighted contributions into one descending list. Every product in the
// collaborative list adds the collaborative weight; every distinct
// product in the content list adds the content weight; a product in
// both lists gets the sum. Ties keep first-insertion order, and
// collaborative insertions precede content ones.
func (e *Engine) Fuse(company, text string, opts Options) []ScoredProduct {
	opts = e.resolve(opts)

	collaborative := e.model.TopN(company, opts.TopN)
	content := e.index.Query(text, opts.TopN)

	scores := make(map[string]float64)
	order := make([]string, 0, len(collaborative)+len(content))

	add := func(product string, weight float64) {
		if _, ok := scores[product]; !ok {
			order = append(order, product)
		}
		scores[product] += weight
	}

	for _, p := range collaborative {
		// A neutral prediction carries no signal; a cold company
		// leans entirely on the content side
		if p.Score <= 0 {
			continue
		}
		add(p.Product, opts.CollaborativeWeight)
	}
	seen := make(map[string]struct{})
	for _, m := range content {
		// The content list may carry several accelerators of one
		// product; the weight counts presence, not occurrences
		if _, dup := seen[m.Item.Product]; dup {
			continue
		}
		seen[m.Item.Product] = struct{}{}
		add(m.Item.Product, opts.ContentWeight)
	}

	fused := make([]ScoredProduct, len(order))
	for i, product := range order {
		fused[i] = ScoredProduct{Product: product, Score: scores[product]}
	}

	// Stable sort keeps first-insertion order on ties
	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Score > fused[j].Score
	})

	if len(fused) > opts.TopN {
		fused = fused[:opts.TopN]
	}
	return fused
}

// Recommend fuses both sources and formats the result as a sentence.
// Returns ErrNoMatch when neither source produced a product.
func (e *Engine) Recommend(ctx context.Context, company, text string, opts Options) (string, error) {
	opts = e.resolve(opts)

	cacheKey := e.cache.Key(company, text, opts)
	if cached, ok := e.cache.Get(cacheKey); ok {
		return cached, nil
	}

	fused := e.Fuse(company, text, opts)
	if len(fused) == 0 {
		return "", ErrNoMatch
	}

	sentence := FormatRecommendation(text, fused)
	e.cache.Set(cacheKey, sentence)
	return sentence, nil
}

// FormatRecommendation renders the fused list as a serial-comma
// sentence, the last item joined with "and".
func FormatRecommendation(text string, products []ScoredProduct) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The recommended products for your company based on your input '%s' are: ", text)

	last := len(products) - 1
	for i, p := range products {
		if i > 0 && i == last {
			b.WriteString(", and ")
		} else if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, p.Product)
	}
	b.WriteString(".")
	return b.String()
}
