// Package index builds the content-based side of the recommender: a
// tf-idf representation of every catalog item with cosine-similarity
// lookup by free text. The vocabulary and term weights are fixed when
// the index is built; queries are projected into that vocabulary and
// unseen terms contribute nothing.
package index

import (
	"errors"
	"math"
	"sort"

	"github.com/vantagelabs/accel-recommender/internal/models"
)

// Match is one ranked catalog item.
type Match struct {
	Item  models.CatalogItem
	Score float64
}

// Index is the immutable catalog index. Built once at startup, safe for
// concurrent reads.
type Index struct {
	items   []models.CatalogItem
	idf     map[string]float64
	vectors []map[string]float64
	norms   []float64
}

// Build computes the vocabulary, idf table and per-item weight vectors
// over the whole catalog.
func Build(items []models.CatalogItem) (*Index, error) {
	if len(items) == 0 {
		return nil, errors.New("cannot build index over an empty catalog")
	}

	docs := make([][]string, len(items))
	docFreq := make(map[string]int)
	for i := range items {
		docs[i] = Tokenize(items[i].Document())
		seen := make(map[string]struct{})
		for _, tok := range docs[i] {
			if _, ok := seen[tok]; !ok {
				docFreq[tok]++
				seen[tok] = struct{}{}
			}
		}
	}

	// idf = log(N/(df+1)) + 1, smoothed so corpus-wide terms keep a
	// small positive weight
	n := float64(len(items))
	idf := make(map[string]float64, len(docFreq))
	for term, df := range docFreq {
		idf[term] = math.Log(n/(float64(df)+1)) + 1
	}

	ix := &Index{
		items:   items,
		idf:     idf,
		vectors: make([]map[string]float64, len(items)),
		norms:   make([]float64, len(items)),
	}
	for i, tokens := range docs {
		ix.vectors[i] = ix.weigh(tokens)
		ix.norms[i] = vectorNorm(ix.vectors[i])
	}

	return ix, nil
}

// Size returns the number of indexed catalog items.
func (ix *Index) Size() int {
	return len(ix.items)
}

// Query ranks catalog items by cosine similarity to the free-text
// input. Returns at most topN matches, clamped to the catalog size.
// A nil result means no item had any similarity at all, which is a
// valid no-match outcome rather than an error.
func (ix *Index) Query(text string, topN int) []Match {
	if topN <= 0 {
		return nil
	}
	if topN > len(ix.items) {
		topN = len(ix.items)
	}

	queryVec := ix.weigh(Tokenize(text))
	queryNorm := vectorNorm(queryVec)

	matches := make([]Match, len(ix.items))
	for i := range ix.items {
		matches[i] = Match{
			Item:  ix.items[i],
			Score: cosine(queryVec, queryNorm, ix.vectors[i], ix.norms[i]),
		}
	}

	// Stable sort keeps catalog order on ties, so identical input
	// always produces identical ranking
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if matches[0].Score == 0 {
		return nil
	}
	return matches[:topN]
}

// weigh builds a sparse tf-idf vector from tokens already restricted to
// the fixed vocabulary. Out-of-vocabulary tokens are dropped.
func (ix *Index) weigh(tokens []string) map[string]float64 {
	tf := make(map[string]float64)
	for _, tok := range tokens {
		if _, ok := ix.idf[tok]; ok {
			tf[tok]++
		}
	}
	for term := range tf {
		tf[term] *= ix.idf[term]
	}
	return tf
}

func vectorNorm(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func cosine(a map[string]float64, aNorm float64, b map[string]float64, bNorm float64) float64 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	// Iterate the smaller map
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	return dot / (aNorm * bNorm)
}
