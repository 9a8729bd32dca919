package custom

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/amanda-debetaz/PandaExpressPOS/api"
	"github.com/amanda-debetaz/PandaExpressPOS/cmd"
	"github.com/amanda-debetaz/PandaExpressPOS/cron"
	gqlregistry "github.com/amanda-debetaz/PandaExpressPOS/graphql/registry"
)

// Store-specific extensions live here so a franchise deployment can add
// behavior without touching the core packages. Each registry below accepts
// registrations only during init.

var storeHours = map[string]string{
	"mon-fri": "10:00-21:30",
	"sat-sun": "10:30-22:00",
}

func init() {
	// GraphQL extension: query { _extension(name: "store_hours") }
	gqlregistry.Register("store_hours", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return storeHours, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "store:hours",
		Short: "Print the configured store hours",
		Run: func(c *cobra.Command, args []string) {
			for days, hours := range storeHours {
				fmt.Printf("%s  %s\n", days, hours)
			}
		},
	})

	// Cron job
	cron.Register("heartbeat", "@every 5m", func(args ...string) {
		fmt.Println("pos heartbeat", time.Now().Format(time.Kitchen))
	})

	// HTTP route
	api.RegisterGET("/store/hours", func(c echo.Context) error {
		return c.JSON(200, storeHours)
	})
}
