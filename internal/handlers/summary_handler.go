package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reconstruction/internal/services"
)

// SummaryHandler serves the whole-ledger spend summary.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary handles the overall summary.
// @Summary     Cost summary
// @Description Grand and per-category spend with invoice split, recomputed on every call
// @Tags        summary
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} ledger.OverallSummary "Overall summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaryService.Overall()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
