package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/occupancy?date=YYYY-MM-DD (default hari ini)
func (a *API) GetOccupancyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = a.Store.Today()
	}
	report, err := a.reports(c).Occupancy(date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}
