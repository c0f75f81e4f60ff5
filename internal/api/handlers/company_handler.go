package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantagelabs/accel-recommender/internal/models"
	"github.com/vantagelabs/accel-recommender/internal/services"
)

// CompanyHandler serves the company listing endpoint.
type CompanyHandler struct {
	service *services.RecommenderService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(service *services.RecommenderService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List godoc
// @Summary List companies with adoption history
// @Description Returns every company name present in the adoption dataset, in dataset order.
// @Tags company
// @Produce json
// @Success 200 {object} models.CompaniesResponse
// @Router /company [get]
func (h *CompanyHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, models.CompaniesResponse{Companies: h.service.ListCompanies()})
}
