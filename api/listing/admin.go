package listing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/core/auth"
	"storefront.GO/core/cache"
	"storefront.GO/service/catalogapi"
)

func init() {
	api.RegisterModule(RegisterAdminRoutes)
}

// RegisterAdminRoutes adds the authenticated /admin group for cache control.
func RegisterAdminRoutes(apiGroup *echo.Group, src catalogapi.Source) {
	g := apiGroup.Group("/admin", auth.Middleware())

	// POST /api/admin/meta/warm – refetch categories and brands into the cache
	g.POST("/meta/warm", func(c echo.Context) error {
		warmer, ok := src.(catalogapi.MetaWarmer)
		if !ok {
			return c.JSON(http.StatusNotImplemented, echo.Map{"error": "source does not cache metadata"})
		}
		res, err := warmer.WarmMeta(c.Request().Context())
		if err != nil {
			return failure(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"categories":          len(res.Categories),
			"brands":              len(res.Brands),
			"request_duration_ms": api.Elapsed(c),
		})
	})

	// DELETE /api/admin/cache – drop cached metadata and expired entries
	g.DELETE("/cache", func(c echo.Context) error {
		if warmer, ok := src.(catalogapi.MetaWarmer); ok {
			warmer.InvalidateMeta(c.Request().Context())
		}
		purged := cache.GetInstance().Purge()
		return c.JSON(http.StatusOK, echo.Map{"purged": purged, "entries": cache.GetInstance().Len()})
	})
}
