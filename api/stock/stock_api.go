package stock

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	"github.com/amanda-debetaz/PandaExpressPOS/core/auth"
	"github.com/amanda-debetaz/PandaExpressPOS/core/metrics"
	stockRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/stock"
	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

func RegisterStockRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/stock")
	ledger := stockService.NewLedger(db)

	// GET /api/stock – prepared servings per menu item (stock panel)
	g.GET("", func(c echo.Context) error {
		levels, err := ledger.Snapshot()
		if err != nil {
			return stockError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"items": levels})
	})

	// GET /api/stock/:id – one counter, polled by the terminal stock panel
	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
		}
		row, err := stockRepo.NewStockRepository(db).FindByMenuItem(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "no prepared stock for menu item"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"menu_item_id":       row.MenuItemID,
			"servings_available": row.ServingsAvailable,
		})
	})

	// POST /api/stock/cook – batch-cook servings of one menu item
	g.POST("/cook", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			MenuItemID uint `json:"menu_item_id"`
			Servings   int  `json:"servings"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		available, err := ledger.CookBatch(body.MenuItemID, body.Servings)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return stockError(c, err)
		}

		metrics.BatchesCooked.Inc()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"menu_item_id":        body.MenuItemID,
			"servings_available":  available,
			"request_duration_ms": duration,
		})
	})

	// POST /api/stock/discard – end-of-day waste clearing (manager only)
	g.POST("/discard", auth.RequireRole("manager")(func(c echo.Context) error {
		cleared, err := ledger.DiscardAll()
		if err != nil {
			return stockError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"cleared": cleared})
	}))
}

// stockError maps ledger errors onto HTTP responses with enough structure
// for the terminal to render a precise operator message.
func stockError(c echo.Context, err error) error {
	var inv *stockService.InsufficientInventoryError
	if errors.As(err, &inv) {
		metrics.ShortageRejections.WithLabelValues("inventory").Inc()
		return c.JSON(http.StatusConflict, echo.Map{
			"error":     "insufficient_inventory",
			"message":   inv.Error(),
			"shortages": inv.Shortages,
		})
	}
	var prep *stockService.InsufficientPreparedStockError
	if errors.As(err, &prep) {
		metrics.ShortageRejections.WithLabelValues("prepared").Inc()
		return c.JSON(http.StatusConflict, echo.Map{
			"error":     "insufficient_prepared_stock",
			"message":   prep.Error(),
			"shortages": prep.Shortages,
		})
	}
	switch {
	case errors.Is(err, stockService.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, stockService.ErrNoRecipeConfigured):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, stockService.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
