package html

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	orderService "github.com/amanda-debetaz/PandaExpressPOS/service/order"
)

// RegisterMenuBoardHTMLRoutes registers the customer-facing menu board page.
func RegisterMenuBoardHTMLRoutes(e *echo.Echo, db *gorm.DB) {
	e.GET("/menu-board", func(c echo.Context) error {
		start := time.Now()
		menu, err := orderService.GetKioskMenu(db)
		if err != nil {
			log.Println("Menu board error:", err)
			return c.String(http.StatusInternalServerError, "Menu unavailable")
		}
		log.Printf("GetKioskMenu took %s", time.Since(start))
		return c.Render(http.StatusOK, "menu_board.html", map[string]interface{}{
			"Title":      "Menu Board - Panda Express POS",
			"Entrees":    menu.Entrees,
			"Appetizers": menu.Appetizers,
			"ALaCarte":   menu.ALaCarte,
			"Sides":      menu.Sides,
		})
	})
}
