package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantagelabs/accel-recommender/internal/models"
	"github.com/vantagelabs/accel-recommender/internal/services"
)

// QueryHandler serves the freeform catalog question endpoint.
type QueryHandler struct {
	service *services.RecommenderService
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(service *services.RecommenderService) *QueryHandler {
	return &QueryHandler{service: service}
}

// Query godoc
// @Summary Answer a freeform catalog question
// @Description Generates a natural-language answer grounded in the catalog item the query mentions, if any.
// @Tags query
// @Accept json
// @Produce json
// @Param request body models.FreeformQueryRequest true "Freeform question about the catalog"
// @Success 200 {object} models.QueryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /query [post]
func (h *QueryHandler) Query(c *gin.Context) {
	var req models.FreeformQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	answer, err := h.service.AnswerFreeformQuery(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.QueryResponse{Response: answer})
}
