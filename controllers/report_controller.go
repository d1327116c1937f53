package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

const defaultRecentTransactions = 10

type ReportController struct {
	Desk *services.FrontDeskService
}

func NewReportController(desk *services.FrontDeskService) *ReportController {
	return &ReportController{Desk: desk}
}

// GetReport takes start and end as YYYY-MM-DD, both inclusive.
func (rc *ReportController) GetReport(c *gin.Context) {
	start, err := time.ParseInLocation(time.DateOnly, c.Query("start"), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start must be YYYY-MM-DD")
		return
	}
	end, err := time.ParseInLocation(time.DateOnly, c.Query("end"), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end must be YYYY-MM-DD")
		return
	}
	report, err := rc.Desk.Report(c.Request.Context(), start, end)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

func (rc *ReportController) GetDailyReport(c *gin.Context) {
	report, err := rc.Desk.DailyReport(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

func (rc *ReportController) GetDashboard(c *gin.Context) {
	dashboard, err := rc.Desk.Dashboard(c.Request.Context())
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dashboard)
}

func (rc *ReportController) GetRecentTransactions(c *gin.Context) {
	n := defaultRecentTransactions
	if raw := c.Query("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			utils.JSONError(c, http.StatusBadRequest, "n must be a non-negative integer")
			return
		}
		n = v
	}
	txs, err := rc.Desk.RecentTransactions(c.Request.Context(), n)
	if err != nil {
		utils.JSONFromError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, txs)
}
