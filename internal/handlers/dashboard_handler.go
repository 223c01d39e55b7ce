package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reconstruction/internal/services"
)

// DashboardHandler serves the dashboard views.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetToday handles the single-day view.
// @Summary     Today view
// @Description Spend for one day, pending reminders and the most recent transactions
// @Tags        dashboard
// @Produce     json
// @Security    ApiKeyAuth
// @Param       date query string false "Day to show (YYYY-MM-DD), defaults to today"
// @Success     200 {object} services.TodayView "Today view"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/today [get]
func (h *DashboardHandler) GetToday(c *gin.Context) {
	day, err := parseDateQuery(c, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.dashboardService.Today(day)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetWeek handles the Monday..Sunday week view.
// @Summary     Week view
// @Description Spend for the Monday..Sunday week containing the given day
// @Tags        dashboard
// @Produce     json
// @Security    ApiKeyAuth
// @Param       date query string false "Any day of the week (YYYY-MM-DD), defaults to today"
// @Success     200 {object} services.WeekView "Week view"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/week [get]
func (h *DashboardHandler) GetWeek(c *gin.Context) {
	day, err := parseDateQuery(c, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.dashboardService.Week(day)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetOverview handles the whole-project view.
// @Summary     Overview
// @Description Grand totals, per-category breakdown, recent transactions and pending reminder count
// @Tags        dashboard
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} services.OverviewView "Overview"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	view, err := h.dashboardService.Overview()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
