package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	"github.com/amanda-debetaz/PandaExpressPOS/core/auth"
	menuEntity "github.com/amanda-debetaz/PandaExpressPOS/model/entity/menu"
	menuRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/menu"
	orderService "github.com/amanda-debetaz/PandaExpressPOS/service/order"
)

func init() {
	api.RegisterModule(RegisterMenuAdminRoutes)
}

// RegisterMenuAdminRoutes wires the manager-side menu CRUD. The public
// read-only menu lives in api/kiosk.
func RegisterMenuAdminRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/admin/menu", auth.RequireRole("manager"))
	repo := menuRepo.NewMenuRepository(db)

	g.POST("", func(c echo.Context) error {
		var item menuEntity.MenuItem
		if err := c.Bind(&item); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if item.Name == "" || item.CategoryID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and category_id are required"})
		}
		if err := repo.Create(&item); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		orderService.InvalidateMenuCache()
		return c.JSON(http.StatusCreated, item)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
		}
		existing, err := repo.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		var body menuEntity.MenuItem
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		existing.Name = body.Name
		existing.Price = body.Price
		if body.CategoryID != 0 {
			existing.CategoryID = body.CategoryID
		}
		existing.IsActive = body.IsActive
		if err := repo.Update(existing); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		orderService.InvalidateMenuCache()
		return c.JSON(http.StatusOK, existing)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
		}
		if err := repo.Deactivate(uint(id)); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		orderService.InvalidateMenuCache()
		return c.NoContent(http.StatusNoContent)
	})
}
