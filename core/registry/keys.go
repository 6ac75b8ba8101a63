package registry

// Core keys for GlobalRegistry and per-request values.
const (
	// echo.Context keys (per-request)
	KeyRequestStart = "request_start"

	// Extension registries (cmd, cron, api, routes), stored in GlobalRegistry
	KeyRegistryCmd    = "registry:cmd"
	KeyRegistryCron   = "registry:cron"
	KeyRegistryAPI    = "registry:api"
	KeyRegistryRoutes = "registry:routes"
)
