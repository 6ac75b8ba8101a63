// Package custom shows how extensions hook into the CLI, cron and HTTP
// registries. Import it for side effects.
package custom

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"storefront.GO/api"
	"storefront.GO/cmd"
	"storefront.GO/core/cache"
	"storefront.GO/cron"
	"storefront.GO/mapping"
)

func init() {
	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "custom:sorts",
		Short: "List the sort keys and their search codes",
		Run: func(c *cobra.Command, args []string) {
			for _, k := range mapping.SortKeys() {
				fmt.Fprintf(c.OutOrStdout(), "%-16s %s\n", k, mapping.SortCode(k))
			}
		},
	})

	// Cron job
	cron.Register("cachestats", "@every 15m", func(args ...string) {
		log.Printf("cachestats: %d entries in memory", cache.GetInstance().Len())
	})

	// HTTP route
	api.RegisterGET("/custom/colors", func(c echo.Context) error {
		return c.JSON(http.StatusOK, mapping.Palette())
	})
}
