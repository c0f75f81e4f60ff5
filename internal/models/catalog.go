package models

// CatalogItem is one row of the merged product/accelerator catalog.
// An item exists only when an accelerator references a known product,
// so both names are always present; the text fields may be empty.
type CatalogItem struct {
	Accelerator      string `json:"accelerator"`
	Product          string `json:"product"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	Type             string `json:"type"`
}

// Document concatenates the text fields used for content matching.
func (c *CatalogItem) Document() string {
	return c.Category + " " + c.Description + " " + c.ShortDescription + " " + c.Type
}

// AdoptionRecord is one historical fact: a company did or did not
// implement a product. The flag is the only rating signal.
type AdoptionRecord struct {
	Company     string `json:"company"`
	Product     string `json:"product"`
	Implemented bool   `json:"implemented"`
}
