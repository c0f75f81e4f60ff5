// Package adoption builds the collaborative side of the recommender: a
// company-based neighborhood model over the historical company×product
// adoption matrix. Ratings are the binary implemented flag; similarity
// between companies is cosine over their rating vectors.
package adoption

import (
	"errors"
	"math"
	"sort"

	"github.com/vantagelabs/accel-recommender/internal/models"
)

// Prediction is one product with its predicted affinity.
type Prediction struct {
	Product string
	Score   float64
}

// Model is the immutable neighborhood model. Built once at startup,
// safe for concurrent reads.
type Model struct {
	products   []string       // first-seen order in the history table
	productIdx map[string]int
	companies  []string
	companyIdx map[string]int
	ratings    []map[int]float64 // per company: product index -> 0 or 1
	sims       [][]float64       // symmetric company×company cosine
}

// Build constructs the rating matrix and the company similarity table.
func Build(records []models.AdoptionRecord) (*Model, error) {
	if len(records) == 0 {
		return nil, errors.New("cannot build adoption model without history")
	}

	m := &Model{
		productIdx: make(map[string]int),
		companyIdx: make(map[string]int),
	}

	for _, rec := range records {
		if _, ok := m.productIdx[rec.Product]; !ok {
			m.productIdx[rec.Product] = len(m.products)
			m.products = append(m.products, rec.Product)
		}
		ci, ok := m.companyIdx[rec.Company]
		if !ok {
			ci = len(m.companies)
			m.companyIdx[rec.Company] = ci
			m.companies = append(m.companies, rec.Company)
			m.ratings = append(m.ratings, make(map[int]float64))
		}
		rating := 0.0
		if rec.Implemented {
			rating = 1.0
		}
		m.ratings[ci][m.productIdx[rec.Product]] = rating
	}

	m.computeSimilarities()
	return m, nil
}

// computeSimilarities fills the symmetric cosine table.
func (m *Model) computeSimilarities() {
	n := len(m.companies)
	norms := make([]float64, n)
	for i, ratings := range m.ratings {
		var sum float64
		for _, r := range ratings {
			sum += r * r
		}
		norms[i] = math.Sqrt(sum)
	}

	m.sims = make([][]float64, n)
	for i := range m.sims {
		m.sims[i] = make([]float64, n)
		m.sims[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := cosineRatings(m.ratings[i], norms[i], m.ratings[j], norms[j])
			m.sims[i][j] = sim
			m.sims[j][i] = sim
		}
	}
}

// Predict returns the predicted affinity of a company for a product in
// [0,1]: the similarity-weighted average of the ratings its neighbors
// (the company itself included, at similarity 1) gave that product.
// Unknown companies, unknown products and unrated neighborhoods all
// fall back to the neutral 0 — never an error.
func (m *Model) Predict(company, product string) float64 {
	ci, ok := m.companyIdx[company]
	if !ok {
		return 0
	}
	pi, ok := m.productIdx[product]
	if !ok {
		return 0
	}

	var weighted, total float64
	for ni, ratings := range m.ratings {
		rating, rated := ratings[pi]
		if !rated {
			continue
		}
		sim := m.sims[ci][ni]
		if sim <= 0 {
			continue
		}
		weighted += sim * rating
		total += sim
	}

	if total == 0 {
		return 0
	}
	return weighted / total
}

// TopN predicts an affinity for every distinct product in the history
// and returns the n best. Ties keep the product's first-seen order.
func (m *Model) TopN(company string, n int) []Prediction {
	if n <= 0 {
		return nil
	}
	if n > len(m.products) {
		n = len(m.products)
	}

	predictions := make([]Prediction, len(m.products))
	for i, product := range m.products {
		predictions[i] = Prediction{
			Product: product,
			Score:   m.Predict(company, product),
		}
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})

	return predictions[:n]
}

// Products returns the distinct products in first-seen order.
func (m *Model) Products() []string {
	return m.products
}

// Companies returns the distinct companies in first-seen order.
func (m *Model) Companies() []string {
	return m.companies
}

func cosineRatings(a map[int]float64, aNorm float64, b map[int]float64, bNorm float64) float64 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, ra := range a {
		if rb, ok := b[idx]; ok {
			dot += ra * rb
		}
	}
	return dot / (aNorm * bNorm)
}
