// Package handlers exposes the recommendation operations over HTTP.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vantagelabs/accel-recommender/internal/models"
	"github.com/vantagelabs/accel-recommender/internal/recommend"
	"github.com/vantagelabs/accel-recommender/internal/recommend/router"
	"github.com/vantagelabs/accel-recommender/internal/services"
)

// NoMatchMessage is the body returned when the catalog has nothing
// resembling the input. A miss is a normal outcome, not an error.
const NoMatchMessage = "No close matches found for the input."

// RecommendHandler serves the two recommendation endpoints.
type RecommendHandler struct {
	service   *services.RecommenderService
	validator *validator.Validate
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(service *services.RecommenderService) *RecommendHandler {
	return &RecommendHandler{
		service:   service,
		validator: validator.New(),
	}
}

// NewUser godoc
// @Summary Recommend accelerators for a new user
// @Description Ranks catalog accelerators against the free-text input alone, without adoption history.
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body models.NewUserRequest true "Free-text description of what the user needs"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/recommend/new-user [post]
func (h *RecommendHandler) NewUser(c *gin.Context) {
	var req models.NewUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.RecommendForNewUser(c.Request.Context(), req.UserQuery)
	if err != nil {
		if errors.Is(err, recommend.ErrNoMatch) {
			c.JSON(http.StatusOK, models.RecommendationResponse{Recommendations: NoMatchMessage})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{Recommendations: result})
}

// ExistingUser godoc
// @Summary Recommend products for an existing company
// @Description Routes the query to either the hybrid recommendation engine or the product-information path, using the company's adoption history.
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body models.ExistingUserRequest true "Company name plus free-text query"
// @Success 200 {object} models.RecommendationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/recommend/existing-user [post]
func (h *RecommendHandler) ExistingUser(c *gin.Context) {
	var req models.ExistingUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "validation failed: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.RecommendForExistingUser(c.Request.Context(), req.CompanyName, req.UserQuery)
	if err != nil {
		if errors.Is(err, recommend.ErrNoMatch) {
			c.JSON(http.StatusOK, models.RecommendationResponse{Recommendations: NoMatchMessage})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{Recommendations: result})
}

// respondError maps service errors onto HTTP status codes. Validation
// errors are caught before the service runs; what remains here is
// either a routing contract violation or an upstream model failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrQueryRequired), errors.Is(err, models.ErrCompanyRequired):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, router.ErrUnknownDestination):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: err.Error()})
	}
}
