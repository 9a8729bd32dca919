package jobs

import (
	"log"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	"github.com/amanda-debetaz/PandaExpressPOS/cron"
	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

func init() {
	cron.Register("stockendofday", "30 23 * * *", StockEndOfDayJob)
}

// StockEndOfDayJob discards all remaining prepared stock. Cooked food is not
// held overnight; the counters restart from zero next morning.
func StockEndOfDayJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("stockendofday: database connection failed: %v", err)
		return
	}
	cleared, err := stockService.NewLedger(db).DiscardAll()
	if err != nil {
		log.Printf("stockendofday: discard failed: %v", err)
		return
	}
	log.Printf("stockendofday: cleared %d prepared stock counters", cleared)
}
