package jobs

import (
	"log"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	"github.com/amanda-debetaz/PandaExpressPOS/core/metrics"
	"github.com/amanda-debetaz/PandaExpressPOS/cron"
	inventoryRepo "github.com/amanda-debetaz/PandaExpressPOS/model/repository/inventory"
)

func init() {
	cron.Register("inventorylowstock", "0 * * * *", InventoryLowStockJob)
}

// InventoryLowStockJob logs every active ingredient at or below its par
// level and updates the low-stock gauge for alerting.
func InventoryLowStockJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("inventorylowstock: database connection failed: %v", err)
		return
	}
	repo, err := inventoryRepo.NewInventoryRepository(db)
	if err != nil {
		log.Printf("inventorylowstock: %v", err)
		return
	}
	items, err := repo.FindBelowPar()
	if err != nil {
		log.Printf("inventorylowstock: query failed: %v", err)
		return
	}
	metrics.LowStockIngredients.Set(float64(len(items)))
	for _, item := range items {
		log.Printf("inventorylowstock: %s at %s %s (par %s)",
			item.Name, item.CurrentQuantity.String(), item.Unit, item.ParLevel.String())
	}
}
