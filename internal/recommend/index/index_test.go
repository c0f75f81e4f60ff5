package index

import (
	"reflect"
	"testing"

	"github.com/vantagelabs/accel-recommender/internal/models"
)

func testCatalog() []models.CatalogItem {
	return []models.CatalogItem{
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
		{
			Accelerator:      "Pipeline Sync",
			Product:          "Fivetran",
			Category:         "Data Integration",
			Description:      "managed data pipelines",
			ShortDescription: "connector setup",
			Type:             "integration",
		},
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestQueryCategoryScenario(t *testing.T) {
	ix, err := Build(testCatalog())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// "customer support" must rank the CRM item, not the analytics one
	matches := ix.Query("customer support", 1)
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Item.Product != "Zendesk" {
		t.Errorf("top match = %q, want Zendesk", matches[0].Item.Product)
	}
	if matches[0].Score <= 0 {
		t.Errorf("top score = %f, want > 0", matches[0].Score)
	}
}

func TestQueryDeterministic(t *testing.T) {
	ix, err := Build(testCatalog())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	first := ix.Query("sales dashboards", 3)
	for i := 0; i < 5; i++ {
		again := ix.Query("sales dashboards", 3)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}
	if first[0].Item.Product != "Looker" {
		t.Errorf("top match = %q, want Looker", first[0].Item.Product)
	}
}

func TestQueryNoMatch(t *testing.T) {
	ix, err := Build(testCatalog())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Every term out of vocabulary: a valid empty outcome, not an error
	if matches := ix.Query("quantum blockchain llamas", 3); matches != nil {
		t.Errorf("matches = %v, want nil for zero top similarity", matches)
	}
}

func TestQueryTopNClamped(t *testing.T) {
	ix, err := Build(testCatalog())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	matches := ix.Query("dashboards", 50)
	if len(matches) != ix.Size() {
		t.Errorf("len(matches) = %d, want catalog size %d", len(matches), ix.Size())
	}

	if matches := ix.Query("dashboards", 0); matches != nil {
		t.Errorf("topN=0 should yield nil, got %v", matches)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"stopwords dropped", "I want to enhance the support", []string{"want", "enhance", "support"}},
		{"case folded", "Customer SUPPORT", []string{"customer", "support"}},
		{"punctuation split", "real-time sync!", []string{"real", "time", "sync"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
