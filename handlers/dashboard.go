package handlers

import (
	"net/http"
	"strconv"

	"expense-api/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

// Summary returns the composite dashboard payload
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, summary)
}

// Monthly returns the 12-point series for ?year=YYYY, defaulting to the
// current year when the parameter is absent or unparsable
func (h *DashboardHandler) Monthly(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = parsed
		}
	}

	series, err := h.Service.MonthlySeries(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, series)
}

// Categories returns per-category totals for the pie chart
func (h *DashboardHandler) Categories(c *gin.Context) {
	data, err := h.Service.CategoryData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, data)
}
