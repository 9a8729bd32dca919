package media

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	"github.com/amanda-debetaz/PandaExpressPOS/core/auth"
	mediaService "github.com/amanda-debetaz/PandaExpressPOS/service/media"
)

func init() {
	api.RegisterModule(RegisterMediaRoutes)
}

func RegisterMediaRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/media", auth.RequireRole("manager"))

	// POST /api/media/menu-item/:id – upload a menu-board photo
	g.POST("/menu-item/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid menu item id"})
		}
		file, err := c.FormFile("photo")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "photo file required"})
		}
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		defer src.Close()

		photo, err := mediaService.ProcessMenuPhoto(src, uint(id))
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, photo)
	})
}
