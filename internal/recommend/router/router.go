// Package router decides, per incoming free-text query, whether the
// user wants a recommendation or factual product information. The
// classification itself is delegated to an external capability; the
// router owns the instruction and validates the answer.
package router

import (
	"context"
	"errors"
	"fmt"
)

// The two destinations a query can route to.
const (
	DestRecommendation = "recommendation"
	DestProductInfo    = "product_info"
)

// ErrUnknownDestination means the classifier answered outside the
// two-label set. It propagates to the caller; the router never
// silently picks a default.
var ErrUnknownDestination = errors.New("classifier returned an unknown destination")

const instruction = `You are a smart assistant that routes user queries for a product and accelerator catalog. Based on the input, decide if the user needs:
- "recommendation" if the query asks for product or accelerator suggestions.
- "product_info" if the query asks for details about a specific product or accelerator.
Respond only with one of these categories as the destination.`

// Classifier is the external text-classification capability.
type Classifier interface {
	Classify(ctx context.Context, instruction, query string, labels []string) (string, error)
}

// Router classifies queries into one of the two destinations.
type Router struct {
	classifier Classifier
}

// New creates a router around a classifier.
func New(classifier Classifier) *Router {
	return &Router{classifier: classifier}
}

// Route returns DestRecommendation or DestProductInfo, or fails.
func (r *Router) Route(ctx context.Context, query string) (string, error) {
	label, err := r.classifier.Classify(ctx, instruction, query, []string{DestRecommendation, DestProductInfo})
	if err != nil {
		return "", fmt.Errorf("routing query: %w", err)
	}

	switch label {
	case DestRecommendation, DestProductInfo:
		return label, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDestination, label)
}
