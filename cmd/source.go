package cmd

import (
	"fmt"
	"log"

	"storefront.GO/config"
	fixtureRepo "storefront.GO/model/repository/fixture"
	"storefront.GO/service/catalogapi"
	"storefront.GO/service/normalizer"
)

// NewSource returns the fixture-backed source when USE_FIXTURES is set, and the
// live API client otherwise.
func NewSource(cfg *config.Config) (catalogapi.Source, error) {
	norm := normalizer.New(normalizer.WithCDNHost(cfg.CDNHost))
	if cfg.UseFixtures {
		repo, err := openFixtures()
		if err != nil {
			return nil, err
		}
		return catalogapi.NewFixtureSource(repo, norm), nil
	}
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, metadata cached in memory only."
	if config.PingRedis() {
		redisStatus = "Redis connection successful."
	}
	log.Println(redisStatus)
	return catalogapi.NewClientFromConfig(cfg), nil
}

func openFixtures() (*fixtureRepo.FixtureRepository, error) {
	db, err := config.NewDB()
	if err != nil {
		return nil, fmt.Errorf("fixture database: %w", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("fixture database: %w", err)
	}
	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("fixture database: %w", err)
	}
	repo := fixtureRepo.NewFixtureRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("fixture schema: %w", err)
	}
	return repo, nil
}
