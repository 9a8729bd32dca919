package kitchen

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	"github.com/amanda-debetaz/PandaExpressPOS/api/realtime"
	salesEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/sales"
	kitchenService "github.com/amanda-debetaz/PandaExpressPOS/service/kitchen"
	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

func init() {
	api.RegisterModule(RegisterKitchenRoutes)
}

func RegisterKitchenRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/kitchen")
	svc := kitchenService.NewService(db, stockService.NewLedger(db), realtime.GetHub())

	// GET /api/kitchen/queue – active orders, oldest first
	g.GET("/queue", func(c echo.Context) error {
		queue, err := svc.Queue()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, queue)
	})

	// POST /api/kitchen/:id/status – generic status update
	g.POST("/:id/status", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil || body.Status == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "status required"})
		}
		if err := svc.SetStatus(uint(id), body.Status); err != nil {
			return transitionError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"order_id": id, "status": body.Status})
	})

	// POST /api/kitchen/:id/complete – convenience endpoint to mark done
	g.POST("/:id/complete", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		if err := svc.Complete(uint(id)); err != nil {
			return transitionError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"order_id": id, "status": salesEntity.StatusDone})
	})
}

// transitionError surfaces shortage messages verbatim so the operator sees
// exactly which items are short, and the transition stays rejected.
func transitionError(c echo.Context, err error) error {
	var prep *stockService.InsufficientPreparedStockError
	if errors.As(err, &prep) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":     "insufficient_prepared_stock",
			"message":   prep.Error(),
			"shortages": prep.Shortages,
		})
	}
	switch {
	case errors.Is(err, stockService.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, stockService.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
