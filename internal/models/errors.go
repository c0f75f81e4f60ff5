package models

import "errors"

var (
	ErrQueryRequired   = errors.New("user query is required")
	ErrCompanyRequired = errors.New("company name is required")
)
