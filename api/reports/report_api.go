package reports

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	"github.com/amanda-debetaz/PandaExpressPOS/core/auth"
	reportService "github.com/amanda-debetaz/PandaExpressPOS/service/report"
)

func init() {
	api.RegisterModule(RegisterReportRoutes)
}

func RegisterReportRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/reports", auth.RequireRole("manager"))

	// GET /api/reports/sales?from=2026-01-01&to=2026-01-02&top=10
	g.GET("/sales", func(c echo.Context) error {
		from, to, err := parseRange(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		topN := 10
		if v, err := strconv.Atoi(c.QueryParam("top")); err == nil && v > 0 {
			topN = v
		}

		summary, err := reportService.SalesSummary(db, from, to, topN)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, summary)
	})
}

// parseRange reads from/to date params; defaults to today.
func parseRange(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	if v := c.QueryParam("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}
	if v := c.QueryParam("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}
	return from, to, nil
}
