package kiosk

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	menuRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/menu"
	orderService "github.com/amanda-debetaz/PandaExpressPOS/service/order"
)

func init() {
	api.RegisterModule(RegisterKioskRoutes)
}

func RegisterKioskRoutes(apiGroup *echo.Group, db *gorm.DB) {
	// GET /api/menu – grouped active menu (public: path is in the auth skipper)
	apiGroup.GET("/menu", func(c echo.Context) error {
		menu, err := orderService.GetKioskMenu(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, menu)
	})

	// GET /api/menu/:id – option groups for a base item (combo configuration)
	apiGroup.GET("/menu/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
		}
		repo := menuRepo.NewMenuRepository(db)
		item, err := repo.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		groups, err := repo.FindOptionGroupsForItem(item.MenuItemID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"menu_item":     item,
			"option_groups": groups,
		})
	})

	// POST /api/kiosk/orders – paid kiosk order
	apiGroup.POST("/kiosk/orders", func(c echo.Context) error {
		start := time.Now()

		var body orderService.CheckoutInput
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Source == "" {
			body.Source = "kiosk"
		}

		res, err := orderService.CreatePaidOrder(db, body)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return checkoutError(c, err, duration)
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusCreated, echo.Map{
			"order_id":            res.OrderID,
			"total":               res.Total,
			"request_duration_ms": duration,
		})
	})
}

func checkoutError(c echo.Context, err error, duration int64) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, orderService.ErrEmptyOrder),
		errors.Is(err, orderService.ErrTotalMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, orderService.ErrUnknownItem),
		errors.Is(err, orderService.ErrUnknownOption):
		status = http.StatusNotFound
	case errors.Is(err, orderService.ErrOptionMismatch):
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, echo.Map{"error": err.Error(), "request_duration_ms": duration})
}
