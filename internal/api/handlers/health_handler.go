package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vantagelabs/accel-recommender/internal/recommend/adoption"
	"github.com/vantagelabs/accel-recommender/internal/recommend/index"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	index *index.Index
	model *adoption.Model
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(ix *index.Index, model *adoption.Model) *HealthHandler {
	return &HealthHandler{index: ix, model: model}
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Confirms the application is running, without checking dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Confirms the catalog index and adoption model were built and are serving.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.index == nil || h.index.Size() == 0 {
		response.Status = "not ready"
		response.Error = "catalog index is empty"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Checks["catalog"] = fmt.Sprintf("%d items indexed", h.index.Size())

	if h.model == nil || len(h.model.Companies()) == 0 {
		response.Status = "not ready"
		response.Error = "adoption model is empty"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Checks["adoption"] = fmt.Sprintf("%d companies, %d products", len(h.model.Companies()), len(h.model.Products()))

	c.JSON(http.StatusOK, response)
}
