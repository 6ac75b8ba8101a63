// Package jobs holds the built-in scheduled jobs.
package jobs

import (
	"context"
	"log"

	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/cron"
	"storefront.GO/service/catalogapi"
)

func init() {
	cron.Register("metawarm", config.CronSchedules["metawarm"], MetaWarm)
	cron.Register("cachepurge", config.CronSchedules["cachepurge"], CachePurge)
}

// MetaWarm refreshes the cached category and brand lists.
func MetaWarm(args ...string) {
	cfg := config.Get()
	if cfg.UseFixtures {
		log.Println("metawarm: fixture mode, nothing to warm")
		return
	}
	if config.RedisClient == nil {
		config.InitRedis()
		config.PingRedis()
	}
	warmMeta(catalogapi.NewClientFromConfig(cfg))
}

func warmMeta(w catalogapi.MetaWarmer) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*catalogapi.DefaultTimeout)
	defer cancel()
	res, err := w.WarmMeta(ctx)
	if err != nil {
		log.Printf("metawarm: %s (%v)", catalogapi.Message(err), err)
		return
	}
	log.Printf("metawarm: %d categories, %d brands cached", len(res.Categories), len(res.Brands))
}

// CachePurge drops expired entries from the in-memory cache.
func CachePurge(args ...string) {
	n := cache.GetInstance().Purge()
	log.Printf("cachepurge: %d expired entries removed, %d left", n, cache.GetInstance().Len())
}
