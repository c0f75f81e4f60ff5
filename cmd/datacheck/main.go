// Command datacheck validates the CSV datasets offline: it loads and
// joins the tables, builds the index and the adoption model, prints
// their shape, and optionally runs a sample ranking without touching
// any external service.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/vantagelabs/accel-recommender/internal/config"
	"github.com/vantagelabs/accel-recommender/internal/dataset"
	"github.com/vantagelabs/accel-recommender/internal/recommend"
	"github.com/vantagelabs/accel-recommender/internal/recommend/adoption"
	"github.com/vantagelabs/accel-recommender/internal/recommend/index"
)

func main() {
	query := flag.String("query", "", "Sample free-text query to rank against the catalog")
	company := flag.String("company", "", "Company for a sample hybrid recommendation (requires -query)")
	topN := flag.Int("top", 5, "Results to show for sample rankings")
	verbose := flag.Bool("verbose", false, "Print every catalog item and company")

	flag.Parse()

	_ = godotenv.Load()

	cfg := config.LoadConfig()

	tables, err := dataset.Load(dataset.Paths{
		Products:     cfg.ProductsFile,
		Accelerators: cfg.AcceleratorsFile,
		Entitlements: cfg.EntitlementsFile,
		Companies:    cfg.CompaniesFile,
	})
	if err != nil {
		log.Fatalf("Dataset load failed: %v", err)
	}

	fmt.Printf("Catalog:  %d items (products joined with accelerators)\n", len(tables.Catalog))
	fmt.Printf("Adoption: %d records\n", len(tables.Adoption))
	fmt.Printf("Companies: %d\n", len(tables.Companies))

	ix, err := index.Build(tables.Catalog)
	if err != nil {
		log.Fatalf("Index build failed: %v", err)
	}

	model, err := adoption.Build(tables.Adoption)
	if err != nil {
		log.Fatalf("Adoption model build failed: %v", err)
	}
	fmt.Printf("Model:    %d companies x %d products\n", len(model.Companies()), len(model.Products()))

	if *verbose {
		fmt.Println("\nCatalog items:")
		for _, item := range tables.Catalog {
			fmt.Printf("  %s (%s) [%s]\n", item.Accelerator, item.Product, item.Category)
		}
		fmt.Println("\nCompanies:")
		for _, name := range tables.Companies {
			fmt.Printf("  %s\n", name)
		}
	}

	if *query == "" {
		return
	}

	fmt.Printf("\nContent matches for %q:\n", *query)
	matches := ix.Query(*query, *topN)
	if len(matches) == 0 {
		fmt.Println("  (no matches)")
	}
	for i, m := range matches {
		fmt.Printf("  %d. %-40s %s  score=%.4f\n", i+1, m.Item.Accelerator, m.Item.Product, m.Score)
	}

	if *company == "" {
		return
	}

	engine := recommend.NewEngine(model, ix,
		cfg.Recommend.CollaborativeWeight, cfg.Recommend.ContentWeight, *topN)

	fmt.Printf("\nFused recommendation for company %q:\n", *company)
	fused := engine.Fuse(*company, *query, recommend.Options{TopN: *topN})
	if len(fused) == 0 {
		fmt.Println("  (no matches)")
		return
	}
	for i, p := range fused {
		fmt.Printf("  %d. %-20s score=%.4f\n", i+1, p.Product, p.Score)
	}
}
