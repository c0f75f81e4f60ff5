// Package dataset loads the tabular inputs the service is built from:
// the product catalog, the accelerator catalog, the company list and the
// historical entitlements. Everything is read once at startup; a missing
// or malformed table is fatal.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vantagelabs/accel-recommender/internal/models"
)

var ErrMissingColumn = errors.New("required column not found")

// Paths points at the four CSV tables.
type Paths struct {
	Products     string
	Accelerators string
	Entitlements string
	Companies    string
}

// Tables holds the loaded, joined datasets.
type Tables struct {
	// Catalog is the inner join of products and accelerators on the
	// product name, in product-table order.
	Catalog []models.CatalogItem
	// Adoption preserves the row order of the entitlements table.
	Adoption []models.AdoptionRecord
	// Companies preserves the row order of the companies table.
	Companies []string
}

// Load reads all four tables and performs the catalog join.
func Load(p Paths) (*Tables, error) {
	products, err := readTable(p.Products)
	if err != nil {
		return nil, fmt.Errorf("products table: %w", err)
	}
	accelerators, err := readTable(p.Accelerators)
	if err != nil {
		return nil, fmt.Errorf("accelerators table: %w", err)
	}
	entitlements, err := readTable(p.Entitlements)
	if err != nil {
		return nil, fmt.Errorf("entitlements table: %w", err)
	}
	companies, err := readTable(p.Companies)
	if err != nil {
		return nil, fmt.Errorf("companies table: %w", err)
	}

	catalog, err := joinCatalog(products, accelerators)
	if err != nil {
		return nil, err
	}

	adoption, err := parseAdoption(entitlements)
	if err != nil {
		return nil, err
	}

	names, err := parseCompanies(companies)
	if err != nil {
		return nil, err
	}

	return &Tables{
		Catalog:   catalog,
		Adoption:  adoption,
		Companies: names,
	}, nil
}

// table is a header-indexed view over CSV rows.
type table struct {
	columns map[string]int
	rows    [][]string
}

// get returns the trimmed cell for a column, or "" when the column is
// absent or the row is short. Optional fields default to empty text.
func (t *table) get(row []string, column string) string {
	idx, ok := t.columns[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// require fails when any named column is missing from the header.
func (t *table) require(name string, columns ...string) error {
	for _, c := range columns {
		if _, ok := t.columns[c]; !ok {
			return fmt.Errorf("%w: %q in %s table", ErrMissingColumn, c, name)
		}
	}
	return nil
}

func readTable(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table: %s", path)
	}

	// Header names arrive with stray padding in the source exports
	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}

	return &table{columns: columns, rows: records[1:]}, nil
}

// joinCatalog inner-joins products and accelerators on the product name.
// Output order follows the product table, then each product's
// accelerators in accelerator-table order.
func joinCatalog(products, accelerators *table) ([]models.CatalogItem, error) {
	if err := products.require("products", "Name"); err != nil {
		return nil, err
	}
	if err := accelerators.require("accelerators", "Name", "Product"); err != nil {
		return nil, err
	}

	catalog := make([]models.CatalogItem, 0, len(accelerators.rows))
	for _, prow := range products.rows {
		productName := products.get(prow, "Name")
		if productName == "" {
			continue
		}
		for _, arow := range accelerators.rows {
			if accelerators.get(arow, "Product") != productName {
				continue
			}
			catalog = append(catalog, models.CatalogItem{
				Accelerator:      accelerators.get(arow, "Name"),
				Product:          productName,
				Category:         products.get(prow, "Category"),
				Description:      products.get(prow, "Description"),
				ShortDescription: accelerators.get(arow, "Short description"),
				Type:             accelerators.get(arow, "Type"),
			})
		}
	}

	if len(catalog) == 0 {
		return nil, errors.New("catalog join produced no items")
	}
	return catalog, nil
}

func parseAdoption(entitlements *table) ([]models.AdoptionRecord, error) {
	if err := entitlements.require("entitlements", "Company", "Product", "Implemented"); err != nil {
		return nil, err
	}

	records := make([]models.AdoptionRecord, 0, len(entitlements.rows))
	for _, row := range entitlements.rows {
		company := entitlements.get(row, "Company")
		product := entitlements.get(row, "Product")
		if company == "" || product == "" {
			continue
		}
		records = append(records, models.AdoptionRecord{
			Company:     company,
			Product:     product,
			Implemented: parseFlag(entitlements.get(row, "Implemented")),
		})
	}

	if len(records) == 0 {
		return nil, errors.New("entitlements table has no usable rows")
	}
	return records, nil
}

func parseCompanies(companies *table) ([]string, error) {
	if err := companies.require("companies", "Name"); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(companies.rows))
	for _, row := range companies.rows {
		if name := companies.get(row, "Name"); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// parseFlag accepts the spellings seen across historical exports.
func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
