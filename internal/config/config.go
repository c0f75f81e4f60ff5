// Package config manages application settings via environment variables.
//
// # Environment variables
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//
// ## Data files
//   - DATA_DIR: Base directory for the CSV datasets (default: ./data)
//   - PRODUCTS_FILE: Products catalog CSV (default: DATA_DIR/products.csv)
//   - ACCELERATORS_FILE: Accelerators catalog CSV (default: DATA_DIR/accelerators.csv)
//   - ENTITLEMENTS_FILE: Company adoption history CSV (default: DATA_DIR/entitlements.csv)
//   - COMPANIES_FILE: Company list CSV (default: DATA_DIR/companies.csv)
//
// ## Gemini
//   - GEMINI_API_KEY: Google Gemini API key
//   - GEMINI_CHAT_MODEL: Model for routing and answers (default: gemini-2.0-flash)
//   - GEMINI_TIMEOUT_SECONDS: Per-call timeout (default: 15)
//   - GEMINI_MAX_RETRIES: Retries on transient failure (default: 1)
//
// ## Recommendation
//   - RECOMMEND_COLLAB_WEIGHT: Collaborative score weight (default: 0.7)
//   - RECOMMEND_CONTENT_WEIGHT: Content score weight (default: 0.3)
//   - RECOMMEND_TOP_N: Results per recommendation (default: 5)
//   - RECOMMEND_CACHE_TTL_MINUTES: Response cache TTL (default: 2)
//   - RECOMMEND_CACHE_MAX_SIZE: Response cache entries (default: 500)
//
// ## Tracing
//   - TRACING_ENABLED: Enable OTLP trace export (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC endpoint (default: localhost:4317)
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Dataset files
	DataDir          string
	ProductsFile     string
	AcceleratorsFile string
	EntitlementsFile string
	CompaniesFile    string

	// Gemini configuration
	GeminiAPIKey         string
	GeminiChatModel      string
	GeminiTimeoutSeconds int
	GeminiMaxRetries     int

	// Recommendation configuration
	Recommend RecommendConfig

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

// RecommendConfig contains the fusion and caching knobs.
type RecommendConfig struct {
	// Weight of the collaborative score in the fused ranking (default 0.7)
	CollaborativeWeight float64

	// Weight of the content score in the fused ranking (default 0.3)
	ContentWeight float64

	// Number of products per recommendation (default 5)
	TopN int

	// Response cache TTL in minutes (default 2)
	CacheTTLMinutes int

	// Response cache max entries (default 500)
	CacheMaxSize int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DataDir:          dataDir,
		ProductsFile:     getEnv("PRODUCTS_FILE", filepath.Join(dataDir, "products.csv")),
		AcceleratorsFile: getEnv("ACCELERATORS_FILE", filepath.Join(dataDir, "accelerators.csv")),
		EntitlementsFile: getEnv("ENTITLEMENTS_FILE", filepath.Join(dataDir, "entitlements.csv")),
		CompaniesFile:    getEnv("COMPANIES_FILE", filepath.Join(dataDir, "companies.csv")),

		// Gemini configuration
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel:      getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
		GeminiTimeoutSeconds: getEnvInt("GEMINI_TIMEOUT_SECONDS", 15),
		GeminiMaxRetries:     getEnvInt("GEMINI_MAX_RETRIES", 1),

		// Recommendation configuration
		Recommend: RecommendConfig{
			CollaborativeWeight: getEnvFloat("RECOMMEND_COLLAB_WEIGHT", 0.7),
			ContentWeight:       getEnvFloat("RECOMMEND_CONTENT_WEIGHT", 0.3),
			TopN:                getEnvInt("RECOMMEND_TOP_N", 5),
			CacheTTLMinutes:     getEnvInt("RECOMMEND_CACHE_TTL_MINUTES", 2),
			CacheMaxSize:        getEnvInt("RECOMMEND_CACHE_MAX_SIZE", 500),
		},

		// Tracing configuration
		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
