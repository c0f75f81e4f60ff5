// Package adapter wraps the external text-classification and
// text-generation capabilities behind narrow interfaces so the core
// never depends on a specific provider.
package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("gemini client not initialized")
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// GeminiConfig tunes the Gemini adapter.
type GeminiConfig struct {
	ChatModel        string
	Timeout          time.Duration
	MaxRetries       int
	ClassifyCacheTTL time.Duration
}

// DefaultGeminiConfig returns the default configuration.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		ChatModel:        "gemini-2.0-flash",
		Timeout:          15 * time.Second,
		MaxRetries:       1,
		ClassifyCacheTTL: 5 * time.Minute,
	}
}

// GeminiAdapter implements text classification and generation on top of
// the Gemini API. Classification uses structured output constrained to
// the caller's label set; both operations run under a bounded timeout
// with a single retry on transient failure.
type GeminiAdapter struct {
	client *genai.Client
	config GeminiConfig

	mu         sync.RWMutex
	classCache map[string]string
	classTime  map[string]time.Time
}

// NewGeminiAdapter creates a new adapter around an existing client.
func NewGeminiAdapter(client *genai.Client, cfg GeminiConfig) *GeminiAdapter {
	defaults := DefaultGeminiConfig()
	if cfg.ChatModel == "" {
		cfg.ChatModel = defaults.ChatModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaults.MaxRetries
	}
	if cfg.ClassifyCacheTTL <= 0 {
		cfg.ClassifyCacheTTL = defaults.ClassifyCacheTTL
	}

	return &GeminiAdapter{
		client:     client,
		config:     cfg,
		classCache: make(map[string]string),
		classTime:  make(map[string]time.Time),
	}
}

// IsAvailable reports whether a client was configured.
func (g *GeminiAdapter) IsAvailable() bool {
	return g.client != nil
}

// classifySchema constrains the structured output to the label set.
func classifySchema(labels []string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"destination": {
				Type:        genai.TypeString,
				Description: "The category this query belongs to",
				Enum:        labels,
			},
		},
		Required: []string{"destination"},
	}
}

// Classify asks the model to put the query into one of the labels,
// following the caller's instruction. The returned label is whatever
// the model produced; membership validation is the caller's job.
func (g *GeminiAdapter) Classify(ctx context.Context, instruction, query string, labels []string) (string, error) {
	if g.client == nil {
		return "", ErrNotConfigured
	}

	cacheKey := instruction + "|" + query
	if label, ok := g.cachedLabel(cacheKey); ok {
		return label, nil
	}

	prompt := fmt.Sprintf("%s\n\nUser query: %s", instruction, query)
	content := genai.NewContentFromText(prompt, genai.RoleUser)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   classifySchema(labels),
	}

	resp, err := g.generateWithRetry(ctx, content, config)
	if err != nil {
		return "", err
	}

	jsonStr := partText(resp)
	var result struct {
		Destination string `json:"destination"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return "", fmt.Errorf("parsing classification output: %w", err)
	}

	label := strings.TrimSpace(result.Destination)
	g.storeLabel(cacheKey, label)
	return label, nil
}

// Generate produces a natural-language answer grounded in the provided
// catalog context.
func (g *GeminiAdapter) Generate(ctx context.Context, contextBlock, query string) (string, error) {
	if g.client == nil {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(`You are an assistant for a product and accelerator catalog. Based on the user's query, provide any information about the accelerator and product data below. Answer only from that data.

Accelerator and product data:
%s

User query: %s
Response:`, contextBlock, query)

	content := genai.NewContentFromText(prompt, genai.RoleUser)

	resp, err := g.generateWithRetry(ctx, content, nil)
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(partText(resp))
	if answer == "" {
		return "", ErrEmptyResponse
	}
	return answer, nil
}

// generateWithRetry runs one model call under the configured timeout,
// retrying once on transient failure.
func (g *GeminiAdapter) generateWithRetry(ctx context.Context, content *genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("retrying model call after error: %v", lastErr)
		}

		callCtx, cancel := context.WithTimeout(ctx, g.config.Timeout)
		resp, err := g.client.Models.GenerateContent(callCtx, g.config.ChatModel, []*genai.Content{content}, config)
		cancel()

		if err == nil {
			if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
				return nil, ErrEmptyResponse
			}
			return resp, nil
		}
		lastErr = err

		// The parent context is gone; retrying cannot help
		if ctx.Err() != nil {
			break
		}
	}

	return nil, fmt.Errorf("model call failed after retry: %w", lastErr)
}

// partText extracts the text of the first candidate part.
func partText(resp *genai.GenerateContentResponse) string {
	part := resp.Candidates[0].Content.Parts[0]
	if part.Text != "" {
		return part.Text
	}
	return fmt.Sprintf("%v", part)
}

func (g *GeminiAdapter) cachedLabel(key string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if label, ok := g.classCache[key]; ok {
		if time.Since(g.classTime[key]) < g.config.ClassifyCacheTTL {
			return label, true
		}
	}
	return "", false
}

func (g *GeminiAdapter) storeLabel(key, label string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.classCache[key] = label
	g.classTime[key] = time.Now()
}
