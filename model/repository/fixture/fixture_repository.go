package fixture

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	fixtureEntity "storefront.GO/model/entity/fixture"
)

type FixtureRepository struct {
	db *gorm.DB
}

func NewFixtureRepository(db *gorm.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

// AutoMigrate creates or updates the fixture_products table.
func (r *FixtureRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&fixtureEntity.FixtureProduct{})
}

// Upsert inserts items in batches, replacing the payload of existing codes.
func (r *FixtureRepository) Upsert(items []fixtureEntity.FixtureProduct, batchSize int) error {
	if len(items) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "payload", "origin", "position", "recorded_at"}),
	}).CreateInBatches(items, batchSize).Error
}

// FindAll returns every fixture in listing order.
func (r *FixtureRepository) FindAll() ([]fixtureEntity.FixtureProduct, error) {
	var items []fixtureEntity.FixtureProduct
	err := r.db.Order("position ASC").Order("code ASC").Find(&items).Error
	return items, err
}

// FindByCode returns gorm.ErrRecordNotFound when code is unknown.
func (r *FixtureRepository) FindByCode(code string) (*fixtureEntity.FixtureProduct, error) {
	var item fixtureEntity.FixtureProduct
	if err := r.db.Where("code = ?", code).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FixtureRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&fixtureEntity.FixtureProduct{}).Count(&n).Error
	return n, err
}

// DeleteAll empties the table.
func (r *FixtureRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&fixtureEntity.FixtureProduct{}).Error
}
