// Listing HTTP server — run with: go run ./cmd/server
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront.GO/api"
	_ "storefront.GO/api/listing"
	"storefront.GO/cmd"
	"storefront.GO/config"
	_ "storefront.GO/custom"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cfg := config.AppConfig

	src, err := cmd.NewSource(cfg)
	if err != nil {
		log.Fatalf("failed to open catalog source: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(api.RequestDuration())

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, src)
	api.ApplyRoutes(e, src)

	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "doom", "larry3d", "puffy"}
	fig := figure.NewFigure(cfg.AppName, fonts[rand.Intn(len(fonts))], true)
	fig.Print()
	fmt.Println()

	log.Printf("Listing at http://localhost:%s/api/listing  (env=%s, fixtures=%v)", cfg.Port, cfg.Env, cfg.UseFixtures)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
