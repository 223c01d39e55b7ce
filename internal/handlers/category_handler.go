package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reconstruction/internal/nullable"
	"reconstruction/internal/pagination"
	"reconstruction/internal/services"
)

// CategoryHandler handles cost-category requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	summaryService  services.SummaryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, summaryService services.SummaryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, summaryService: summaryService}
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required,notblank,max=200"`
	Description   *string  `json:"description"`
	BudgetedTotal *float64 `json:"budgeted_total" binding:"omitempty,gte=0"`
}

// UpdateCategoryRequest represents the request payload for updating a category.
// Absent fields are left unchanged. A null description or budget clears it.
type UpdateCategoryRequest struct {
	Name          *string                 `json:"name" binding:"omitempty,notblank,max=200"`
	Description   nullable.Field[string]  `json:"description" swaggertype:"string"`
	BudgetedTotal nullable.Field[float64] `json:"budgeted_total" binding:"omitempty,gte=0" swaggertype:"number"`
}

// CreateCategory handles the creation of a new category.
// @Summary     Create a category
// @Description Create a new top-level cost category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.CostCategory "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Description, req.BudgetedTotal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// ListCategories handles listing categories.
// @Summary     List categories
// @Description Get a paginated list of cost categories in creation order
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CostCategory] "Paginated categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.categoryService.ListCategories(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCategory handles retrieving a category together with its spend summary.
// @Summary     Get category by ID
// @Description Get a cost category and its per-article spend summary
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} map[string]interface{} "Category and summary"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.Category(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "summary": summary})
}

// UpdateCategory handles patching a category.
// @Summary     Update category
// @Description Update the supplied fields of a cost category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to change"
// @Success     200 {object} models.CostCategory "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	category, err := h.categoryService.UpdateCategory(id, services.CategoryPatch{
		Name:          req.Name,
		Description:   req.Description,
		BudgetedTotal: req.BudgetedTotal,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles deleting an empty category.
// @Summary     Delete category
// @Description Delete a cost category. Fails while the category still has articles.
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category has articles"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /costs/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
