package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/nullable"
	"reconstruction/internal/pagination"
	"reconstruction/internal/services"
)

// ArticleHandler handles cost-article requests.
type ArticleHandler struct {
	articleService services.ArticleServicer
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService services.ArticleServicer) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// CreateArticleRequest represents the request payload for creating an article.
type CreateArticleRequest struct {
	CategoryID     string   `json:"category_id" binding:"required,notblank"`
	Name           string   `json:"name" binding:"required,notblank,max=200"`
	BudgetedAmount *float64 `json:"budgeted_amount" binding:"omitempty,gte=0"`
	Notes          *string  `json:"notes"`
}

// UpdateArticleRequest represents the request payload for updating an article.
// CategoryID is only declared so that an attempt to move an article can be
// rejected instead of silently ignored.
type UpdateArticleRequest struct {
	CategoryID     *string                 `json:"category_id" swaggerignore:"true"`
	Name           *string                 `json:"name" binding:"omitempty,notblank,max=200"`
	BudgetedAmount nullable.Field[float64] `json:"budgeted_amount" binding:"omitempty,gte=0" swaggertype:"number"`
	Notes          nullable.Field[string]  `json:"notes" swaggertype:"string"`
}

// CreateArticle handles the creation of a new article.
// @Summary     Create an article
// @Description Create a budget line under an existing category
// @Tags        articles
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateArticleRequest true "Article details"
// @Success     201 {object} models.CostArticle "Article created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	categoryID, err := parseBodyID("category_id", req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(categoryID, req.Name, req.BudgetedAmount, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// ListArticles handles listing articles.
// @Summary     List articles
// @Description Get a paginated list of articles, optionally for one category
// @Tags        articles
// @Produce     json
// @Security    ApiKeyAuth
// @Param       category_id query string false "Filter by category ID"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CostArticle] "Paginated articles"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/articles [get]
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	categoryID, err := parseIDQuery(c, "category_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.articleService.ListArticles(services.ArticleFilter{CategoryID: categoryID}, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetArticle handles retrieving a specific article.
// @Summary     Get article by ID
// @Tags        articles
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Article ID"
// @Success     200 {object} models.CostArticle "Article details"
// @Failure     400 {object} ErrorResponse "Invalid article ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Article not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/articles/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	article, err := h.articleService.GetArticleByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateArticle handles patching an article.
// @Summary     Update article
// @Description Update the supplied fields of an article. The owning category cannot change.
// @Tags        articles
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string               true "Article ID"
// @Param       request body UpdateArticleRequest true "Fields to change"
// @Success     200 {object} models.CostArticle "Updated article"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Article not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/articles/{id} [patch]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	if req.CategoryID != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id cannot be changed"))
		return
	}

	article, err := h.articleService.UpdateArticle(id, services.ArticlePatch{
		Name:           req.Name,
		BudgetedAmount: req.BudgetedAmount,
		Notes:          req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// DeleteArticle handles deleting an article without transactions.
// @Summary     Delete article
// @Description Delete an article. Fails while the article still has transactions.
// @Tags        articles
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Article ID"
// @Success     200 {object} MessageResponse "Article deleted"
// @Failure     400 {object} ErrorResponse "Invalid article ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Article not found"
// @Failure     409 {object} ErrorResponse "Article has transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.articleService.DeleteArticle(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}
