package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func testPaths(t *testing.T) Paths {
	t.Helper()
	dir := t.TempDir()
	return Paths{
		Products: writeCSV(t, dir, "products.csv",
			"Name, Category ,Description\n"+
				"Zendesk,CRM,customer support automation\n"+
				"Looker,Analytics,sales dashboards\n"),
		Accelerators: writeCSV(t, dir, "accelerators.csv",
			"Name,Product,Short description,Type\n"+
				"QuickStart Looker,Looker,dashboard starter kit,starter\n"+
				"Zendesk Flows,Zendesk,ticket routing flows,workflow\n"+
				"Zendesk Bots,Zendesk,,bot\n"+
				"Orphan,Unknown,never joined,starter\n"),
		Entitlements: writeCSV(t, dir, "entitlements.csv",
			"Company,Product,Implemented\n"+
				"Acme,Zendesk,1\n"+
				"Acme,Looker,0\n"+
				"Globex,Looker,yes\n"),
		Companies: writeCSV(t, dir, "companies.csv",
			"Name\nAcme\nGlobex\n"),
	}
}

func TestLoad(t *testing.T) {
	tables, err := Load(testPaths(t))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	t.Run("catalog join", func(t *testing.T) {
		if len(tables.Catalog) != 3 {
			t.Fatalf("catalog size = %d, want 3 (orphan accelerator excluded)", len(tables.Catalog))
		}
		// Product-table order first, accelerator order within a product
		first := tables.Catalog[0]
		if first.Accelerator != "Zendesk Flows" || first.Product != "Zendesk" {
			t.Errorf("first item = %q/%q, want Zendesk Flows/Zendesk", first.Accelerator, first.Product)
		}
		if first.Category != "CRM" || first.ShortDescription != "ticket routing flows" {
			t.Errorf("joined fields wrong: %+v", first)
		}
		if tables.Catalog[2].Accelerator != "QuickStart Looker" {
			t.Errorf("last item = %q, want QuickStart Looker", tables.Catalog[2].Accelerator)
		}
	})

	t.Run("missing text defaults to empty", func(t *testing.T) {
		bots := tables.Catalog[1]
		if bots.Accelerator != "Zendesk Bots" {
			t.Fatalf("expected Zendesk Bots at index 1, got %q", bots.Accelerator)
		}
		if bots.ShortDescription != "" {
			t.Errorf("ShortDescription = %q, want empty", bots.ShortDescription)
		}
	})

	t.Run("adoption flags", func(t *testing.T) {
		if len(tables.Adoption) != 3 {
			t.Fatalf("adoption size = %d, want 3", len(tables.Adoption))
		}
		if !tables.Adoption[0].Implemented {
			t.Error("Acme/Zendesk should be implemented")
		}
		if tables.Adoption[1].Implemented {
			t.Error("Acme/Looker should not be implemented")
		}
		if !tables.Adoption[2].Implemented {
			t.Error("yes should parse as implemented")
		}
	})

	t.Run("companies", func(t *testing.T) {
		if len(tables.Companies) != 2 || tables.Companies[0] != "Acme" {
			t.Errorf("companies = %v, want [Acme Globex]", tables.Companies)
		}
	})
}

func TestLoadMissingFile(t *testing.T) {
	p := testPaths(t)
	p.Products = filepath.Join(t.TempDir(), "missing.csv")

	if _, err := Load(p); err == nil {
		t.Fatal("expected error for missing products table")
	}
}

func TestLoadMissingColumn(t *testing.T) {
	p := testPaths(t)
	dir := t.TempDir()
	p.Entitlements = writeCSV(t, dir, "entitlements.csv",
		"Company,Product\nAcme,Zendesk\n")

	_, err := Load(p)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("error = %v, want ErrMissingColumn", err)
	}
}
