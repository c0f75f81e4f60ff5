package models

import "strings"

// NewUserRequest is the payload for the new-user recommendation endpoint.
// @Description Free-text description of what the prospect needs.
type NewUserRequest struct {
	// Free-text description of the need
	UserQuery string `json:"user_query" binding:"required" validate:"required" example:"I want to enhance customer support automation"`
}

// Validate checks required fields after binding.
func (r *NewUserRequest) Validate() error {
	if strings.TrimSpace(r.UserQuery) == "" {
		return ErrQueryRequired
	}
	return nil
}

// ExistingUserRequest is the payload for the existing-user endpoint.
// @Description Company identity plus free-text intent.
type ExistingUserRequest struct {
	// Free-text description of the need
	UserQuery string `json:"user_query" binding:"required" validate:"required" example:"dashboards for our sales team"`
	// Company name as it appears in the adoption history
	CompanyName string `json:"company_name" binding:"required" validate:"required" example:"Alpha Accessories"`
}

// Validate checks required fields after binding.
func (r *ExistingUserRequest) Validate() error {
	if strings.TrimSpace(r.UserQuery) == "" {
		return ErrQueryRequired
	}
	if strings.TrimSpace(r.CompanyName) == "" {
		return ErrCompanyRequired
	}
	return nil
}

// FreeformQueryRequest is the payload for the freeform /query endpoint.
type FreeformQueryRequest struct {
	// Free-text question about the catalog
	Query string `json:"query" binding:"required" validate:"required" example:"Tell me about ActiveCampaign"`
}

// Validate checks required fields after binding.
func (r *FreeformQueryRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return ErrQueryRequired
	}
	return nil
}
