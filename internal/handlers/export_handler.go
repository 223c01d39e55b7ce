package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/export"
	"reconstruction/internal/logger"
	"reconstruction/internal/services"
)

// ExportHandler serves spreadsheet exports of the ledger.
type ExportHandler struct {
	summaryService services.SummaryServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(summaryService services.SummaryServicer) *ExportHandler {
	return &ExportHandler{summaryService: summaryService}
}

// ExportTransactions handles the xlsx export of filtered transactions.
// @Summary     Export transactions
// @Description Filtered transactions, oldest first, as an xlsx workbook with a total row
// @Tags        transactions
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    ApiKeyAuth
// @Param       article_id  query string false "Filter by article"
// @Param       category_id query string false "Filter by category"
// @Param       from        query string false "First day (YYYY-MM-DD), inclusive"
// @Param       to          query string false "Last day (YYYY-MM-DD), inclusive"
// @Success     200 {file} file "Workbook"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/export [get]
func (h *ExportHandler) ExportTransactions(c *gin.Context) {
	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.summaryService.Transactions(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	f, err := export.Workbook(rows)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer f.Close()

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(filter)))
	c.Status(http.StatusOK)
	if _, err := f.WriteTo(c.Writer); err != nil {
		logger.Get().Errorw("failed to write export", "error", err)
	}
}

func exportFilename(filter services.TransactionFilter) string {
	name := "transactions"
	if filter.From != nil {
		name += "_" + filter.From.String()
	}
	if filter.To != nil {
		name += "_" + filter.To.String()
	}
	return name + ".xlsx"
}
