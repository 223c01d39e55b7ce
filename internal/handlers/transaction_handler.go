package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reconstruction/internal/models"
	"reconstruction/internal/nullable"
	"reconstruction/internal/pagination"
	"reconstruction/internal/services"
)

// TransactionHandler handles cost-transaction requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for recording a payment.
type CreateTransactionRequest struct {
	ArticleID       string      `json:"article_id" binding:"required,notblank"`
	TransactionDate models.Date `json:"transaction_date" swaggertype:"string" example:"2025-01-01"`
	PhaseNumber     *int        `json:"phase_number"`
	PaymentMethod   string      `json:"payment_method" binding:"required,notblank,max=50" example:"bank_transfer"`
	Amount          *float64    `json:"amount" binding:"required"`
	HasInvoice      bool        `json:"has_invoice"`
	Notes           *string     `json:"notes"`
}

// UpdateTransactionRequest represents the request payload for patching a
// transaction. created_at is not a field here, so a client value is ignored.
type UpdateTransactionRequest struct {
	ArticleID       *string                `json:"article_id" binding:"omitempty,notblank"`
	TransactionDate *models.Date           `json:"transaction_date" swaggertype:"string" example:"2025-01-01"`
	PhaseNumber     nullable.Field[int]    `json:"phase_number" swaggertype:"integer"`
	PaymentMethod   *string                `json:"payment_method" binding:"omitempty,notblank,max=50"`
	Amount          *float64               `json:"amount"`
	HasInvoice      *bool                  `json:"has_invoice"`
	Notes           nullable.Field[string] `json:"notes" swaggertype:"string"`
}

// CreateTransaction handles recording a new payment.
// @Summary     Create a transaction
// @Description Record a payment against an existing article
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.CostTransaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Article not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	articleID, err := parseBodyID("article_id", req.ArticleID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(services.NewTransaction{
		ArticleID:       articleID,
		TransactionDate: req.TransactionDate,
		PaymentMethod:   req.PaymentMethod,
		Amount:          req.Amount,
		HasInvoice:      req.HasInvoice,
		PhaseNumber:     req.PhaseNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

// ListTransactions handles listing transactions.
// @Summary     List transactions
// @Description Get a paginated, filtered list of transactions, newest date first
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       article_id  query string false "Filter by article ID"
// @Param       category_id query string false "Filter by category ID"
// @Param       from        query string false "Earliest date, inclusive (YYYY-MM-DD)"
// @Param       to          query string false "Latest date, inclusive (YYYY-MM-DD)"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CostTransaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction handles retrieving a specific transaction.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.CostTransaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	txn, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// UpdateTransaction handles patching a transaction.
// @Summary     Update transaction
// @Description Update the supplied fields of a transaction. created_at never changes.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} models.CostTransaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction or article not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	if req.ArticleID != nil {
		articleID, err := parseBodyID("article_id", *req.ArticleID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		req.ArticleID = &articleID
	}

	txn, err := h.transactionService.UpdateTransaction(id, services.TransactionPatch{
		ArticleID:       req.ArticleID,
		TransactionDate: req.TransactionDate,
		PhaseNumber:     req.PhaseNumber,
		PaymentMethod:   req.PaymentMethod,
		Amount:          req.Amount,
		HasInvoice:      req.HasInvoice,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// DeleteTransaction handles deleting a transaction.
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
