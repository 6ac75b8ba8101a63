package fixture

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Origins of a recorded payload.
const (
	OriginImport = "import"
	OriginRecord = "record"
)

// FixtureProduct is one raw search API product kept for offline listings.
type FixtureProduct struct {
	ID         string         `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Code       string         `gorm:"column:code;type:varchar(64);not null;uniqueIndex" json:"code"`
	Name       string         `gorm:"column:name;type:varchar(255)" json:"name"`
	Payload    datatypes.JSON `gorm:"column:payload;not null" json:"payload"`
	Origin     string         `gorm:"column:origin;type:varchar(16)" json:"origin"`
	Position   int            `gorm:"column:position;not null;default:0" json:"position"`
	RecordedAt time.Time      `gorm:"column:recorded_at" json:"recorded_at"`
}

func (FixtureProduct) TableName() string {
	return "fixture_products"
}

func (p *FixtureProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.RecordedAt.IsZero() {
		p.RecordedAt = time.Now()
	}
	return nil
}

// Raw decodes the stored payload back into the API's map form.
func (p FixtureProduct) Raw() (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(p.Payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
