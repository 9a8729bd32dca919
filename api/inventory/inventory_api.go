package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	"github.com/amanda-debetaz/PandaExpressPOS/core/auth"
	inventoryRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/inventory"
)

func init() {
	api.RegisterModule(RegisterInventoryRoutes)
}

func RegisterInventoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/inventory")

	repo, err := inventoryRepo.NewInventoryRepository(db)
	if err != nil {
		panic("inventory api: " + err.Error())
	}

	// GET /api/inventory – active ingredients with on-hand quantities
	g.GET("", func(c echo.Context) error {
		items, err := repo.FindAllActive()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	})

	// GET /api/inventory/low – ingredients at or below par level
	g.GET("/low", func(c echo.Context) error {
		items, err := repo.FindBelowPar()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items})
	})

	// POST /api/inventory/:id/adjust – receiving / manual waste (manager only)
	g.POST("/:id/adjust", auth.RequireRole("manager")(func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ingredient id"})
		}
		var body struct {
			Delta string `json:"delta"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		delta, err := decimal.NewFromString(body.Delta)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "delta must be a decimal number"})
		}

		if err := repo.AdjustQuantity(uint(id), delta); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "ingredient not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		item, err := repo.GetByID(uint(id))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	}))
}
