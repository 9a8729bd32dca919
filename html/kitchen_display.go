package html

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	kitchenService "github.com/amanda-debetaz/PandaExpressPOS/service/kitchen"
	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

// RegisterKitchenDisplayHTMLRoutes registers the kitchen display page. The
// page polls /api/kitchen/queue; this route renders the initial card layout
// server-side so the display works without the websocket.
func RegisterKitchenDisplayHTMLRoutes(e *echo.Echo, db *gorm.DB) {
	svc := kitchenService.NewService(db, stockService.NewLedger(db), nil)
	e.GET("/kitchen-display", func(c echo.Context) error {
		queue, err := svc.Queue()
		if err != nil {
			log.Println("Kitchen display error:", err)
			return c.String(http.StatusInternalServerError, "Queue unavailable")
		}
		return c.Render(http.StatusOK, "kitchen_display.html", map[string]interface{}{
			"Title":  "Kitchen Display - Panda Express POS",
			"Orders": queue,
		})
	})
}
