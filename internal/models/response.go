package models

// RecommendationResponse wraps a formatted recommendation message.
type RecommendationResponse struct {
	Recommendations string `json:"recommendations"`
}

// QueryResponse wraps a generated freeform answer.
type QueryResponse struct {
	Response string `json:"response"`
}

// CompaniesResponse lists every company known to the adoption history.
type CompaniesResponse struct {
	Companies []string `json:"companies"`
}

// ErrorResponse carries a human-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
