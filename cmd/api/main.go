package main

import (
	"context"
	"log"
	"time"

	"google.golang.org/genai"

	"github.com/vantagelabs/accel-recommender/internal/api/routes"
	"github.com/vantagelabs/accel-recommender/internal/config"
	"github.com/vantagelabs/accel-recommender/internal/dataset"
	"github.com/vantagelabs/accel-recommender/internal/observability"
	"github.com/vantagelabs/accel-recommender/internal/recommend"
	"github.com/vantagelabs/accel-recommender/internal/recommend/adapter"
	"github.com/vantagelabs/accel-recommender/internal/recommend/adoption"
	"github.com/vantagelabs/accel-recommender/internal/recommend/index"
	"github.com/vantagelabs/accel-recommender/internal/recommend/router"
	"github.com/vantagelabs/accel-recommender/internal/services"
)

// @title           Accelerator Recommender API
// @version         1.0
// @description     Hybrid product and accelerator recommendations combining company adoption history with content-based catalog matching, plus LLM-routed catalog questions.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	tables, err := dataset.Load(dataset.Paths{
		Products:     cfg.ProductsFile,
		Accelerators: cfg.AcceleratorsFile,
		Entitlements: cfg.EntitlementsFile,
		Companies:    cfg.CompaniesFile,
	})
	if err != nil {
		log.Fatalf("Failed to load datasets: %v", err)
	}
	log.Printf("Loaded %d catalog items, %d adoption records, %d companies",
		len(tables.Catalog), len(tables.Adoption), len(tables.Companies))

	ix, err := index.Build(tables.Catalog)
	if err != nil {
		log.Fatalf("Failed to build catalog index: %v", err)
	}

	model, err := adoption.Build(tables.Adoption)
	if err != nil {
		log.Fatalf("Failed to build adoption model: %v", err)
	}

	var geminiClient *genai.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.GeminiAPIKey,
		})
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set; routed and freeform queries will fail")
	}

	geminiAdapter := adapter.NewGeminiAdapter(geminiClient, adapter.GeminiConfig{
		ChatModel:  cfg.GeminiChatModel,
		Timeout:    time.Duration(cfg.GeminiTimeoutSeconds) * time.Second,
		MaxRetries: cfg.GeminiMaxRetries,
	})

	engine := recommend.NewEngineWithCache(
		model, ix,
		cfg.Recommend.CollaborativeWeight,
		cfg.Recommend.ContentWeight,
		cfg.Recommend.TopN,
		recommend.NewCache(
			time.Duration(cfg.Recommend.CacheTTLMinutes)*time.Minute,
			cfg.Recommend.CacheMaxSize,
		),
	)

	service := services.NewRecommenderService(
		tables.Catalog, ix, engine,
		router.New(geminiAdapter), geminiAdapter,
		tables.Companies, cfg.Recommend.TopN,
	)

	r := routes.SetupRouter(cfg, service, ix, model)

	log.Printf("Server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
