package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
	stockService "github.com/amanda-debetaz/PandaExpressPOS/service/stock"
)

var (
	cookItemID   uint
	cookServings int
)

var stockCookCmd = &cobra.Command{
	Use:   "stock:cook",
	Short: "Record a cooked batch for a menu item",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		available, err := stockService.NewLedger(db).CookBatch(cookItemID, cookServings)
		if err != nil {
			fmt.Printf("Cook failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cooked %d servings for menu item %d. Now available: %s\n",
			cookServings, cookItemID, available.StringFixed(2))
	},
}

var stockDiscardCmd = &cobra.Command{
	Use:   "stock:discard",
	Short: "Discard all prepared stock (end of day)",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		cleared, err := stockService.NewLedger(db).DiscardAll()
		if err != nil {
			fmt.Printf("Discard failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %d prepared stock counters.\n", cleared)
	},
}

var stockListCmd = &cobra.Command{
	Use:   "stock:list",
	Short: "Print the prepared stock snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		levels, err := stockService.NewLedger(db).Snapshot()
		if err != nil {
			fmt.Printf("Snapshot failed: %v\n", err)
			os.Exit(1)
		}
		for _, lv := range levels {
			fmt.Printf("%4d  %-30s %8s servings\n", lv.MenuItemID, lv.Name, lv.ServingsAvailable.StringFixed(2))
		}
	},
}

func init() {
	stockCookCmd.Flags().UintVarP(&cookItemID, "item", "i", 0, "Menu item ID")
	stockCookCmd.Flags().IntVarP(&cookServings, "servings", "n", 0, "Whole servings cooked")
	_ = stockCookCmd.MarkFlagRequired("item")
	_ = stockCookCmd.MarkFlagRequired("servings")
	rootCmd.AddCommand(stockCookCmd)
	rootCmd.AddCommand(stockDiscardCmd)
	rootCmd.AddCommand(stockListCmd)
}
