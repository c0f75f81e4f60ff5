package recommend

import (
	"fmt"
	"strings"

	"github.com/vantagelabs/accel-recommender/internal/models"
	"github.com/vantagelabs/accel-recommender/internal/utils"
)

// NoRelevantData is the context handed to the generator when nothing in
// the catalog matched the query.
const NoRelevantData = "No relevant data found."

// NoSpecificItem is the context used when a freeform query names no
// catalog item.
const NoSpecificItem = "No specific accelerator data provided."

// MatchContext collects the catalog rows related to a query into a
// readable context block for the text-generation capability. A row is
// related when its accelerator name contains the query or the query
// contains the accelerator name, case- and accent-insensitively.
func MatchContext(catalog []models.CatalogItem, query string) string {
	folded := utils.Fold(strings.TrimSpace(query))
	if folded == "" {
		return NoRelevantData
	}

	var rows []string
	for i := range catalog {
		name := utils.Fold(catalog[i].Accelerator)
		if name == "" {
			continue
		}
		if strings.Contains(name, folded) || strings.Contains(folded, name) {
			rows = append(rows, FormatItemDetail(&catalog[i]))
		}
	}

	if len(rows) == 0 {
		return NoRelevantData
	}
	return strings.Join(rows, "\n\n")
}

// MentionedItem returns the first catalog item whose accelerator name
// appears inside the query.
func MentionedItem(catalog []models.CatalogItem, query string) (*models.CatalogItem, bool) {
	folded := utils.Fold(query)
	for i := range catalog {
		name := utils.Fold(catalog[i].Accelerator)
		if name != "" && strings.Contains(folded, name) {
			return &catalog[i], true
		}
	}
	return nil, false
}

// FormatItemDetail renders one catalog item as labeled lines.
func FormatItemDetail(item *models.CatalogItem) string {
	return fmt.Sprintf(
		"Accelerator: %s\nShort Description: %s\nRelated Product: %s\nCategory: %s\nProduct Description: %s",
		item.Accelerator, item.ShortDescription, item.Product, item.Category, item.Description)
}
